package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/shoplens"
	"github.com/fwojciec/shoplens/mock"
	shopslog "github.com/fwojciec/shoplens/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingDetector_Detect(t *testing.T) {
	t.Parallel()

	t.Run("logs detected platform with duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PlatformDetector{
			DetectFn: func(html string) shoplens.Platform {
				return shoplens.PlatformShopify
			},
		}

		detector := shopslog.NewLoggingDetector(inner, logger)
		platform := detector.Detect("<html></html>")

		assert.Equal(t, shoplens.PlatformShopify, platform)
		output := buf.String()
		assert.Contains(t, output, "platform detection")
		assert.Contains(t, output, "platform=shopify")
		assert.Contains(t, output, "duration=")
	})
}

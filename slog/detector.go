package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/shoplens"
)

// Ensure LoggingDetector implements shoplens.PlatformDetector.
var _ shoplens.PlatformDetector = (*LoggingDetector)(nil)

// LoggingDetector wraps a PlatformDetector with debug logging.
type LoggingDetector struct {
	next   shoplens.PlatformDetector
	logger *slog.Logger
}

// NewLoggingDetector creates a new LoggingDetector.
func NewLoggingDetector(next shoplens.PlatformDetector, logger *slog.Logger) *LoggingDetector {
	return &LoggingDetector{next: next, logger: logger}
}

// Detect delegates to the wrapped detector and logs the result.
func (d *LoggingDetector) Detect(html string) shoplens.Platform {
	begin := time.Now()
	platform := d.next.Detect(html)
	d.logger.Info("platform detection",
		"platform", string(platform),
		"duration", time.Since(begin),
	)
	return platform
}

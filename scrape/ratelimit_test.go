package scrape_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/shoplens/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("allows requests within the burst immediately", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewDomainLimiter(1, 3)

		start := time.Now()
		for range 3 {
			require.NoError(t, limiter.Wait(context.Background(), "example.com"))
		}
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("paces domains independently", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewDomainLimiter(1, 1)

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "a.example.com"))
		require.NoError(t, limiter.Wait(context.Background(), "b.example.com"))
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("returns an error when the context is canceled", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewDomainLimiter(0.001, 1)

		// Drain the single burst token first.
		require.NoError(t, limiter.Wait(context.Background(), "example.com"))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		assert.Error(t, limiter.Wait(ctx, "example.com"))
	})
}

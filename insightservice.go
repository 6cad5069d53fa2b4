package shoplens

import "context"

// InsightService builds a storefront insight from a raw URL.
type InsightService interface {
	// BuildInsight validates rawURL, scans the storefront, and returns its
	// insight. Returns EINVALID for bad input (before any network call)
	// and EUNREACHABLE when the store's home page cannot be fetched; all
	// other failures degrade to warnings inside the returned insight.
	BuildInsight(ctx context.Context, rawURL string) (*Insight, error)
}

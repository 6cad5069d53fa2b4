package shoplens

import "context"

// DomainLimiter paces outbound requests per target domain. A scan issues
// many small fetches against one store; the limiter keeps them polite.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled before the wait completes.
	Wait(ctx context.Context, domain string) error
}

package shoplens

import "context"

// Fetcher retrieves HTML or JSON bodies from URLs.
//
// Implementations make a single attempt per call: a timeout, connection
// error, or non-2xx status returns an EUNAVAILABLE error rather than
// retrying. Callers treat such errors as routine, not exceptional.
type Fetcher interface {
	// Fetch performs a GET against the URL and returns the response body.
	// The context bounds the request; implementations also carry their own
	// hard timeout.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases client resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// Package http provides the HTTP-based implementation of shoplens.Fetcher
// along with product discovery from storefront sitemaps.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/shoplens"
)

// DefaultFetchTimeout is the hard per-request timeout. Storefronts that
// take longer than this are treated the same as unreachable ones.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent is a browser-like User-Agent. Many storefronts serve
// empty or blocked responses to obvious non-browser clients.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Ensure Fetcher implements shoplens.Fetcher at compile time.
var _ shoplens.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves bodies from URLs using plain HTTP requests with
// browser-emulating headers. It does not execute JavaScript and makes a
// single attempt per call.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the body from the given URL. Timeouts, connection errors,
// and non-2xx statuses all surface as EUNAVAILABLE errors; callers treat
// them as routine.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", shoplens.Errorf(shoplens.EINVALID, "invalid URL %q: %v", url, err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,application/json;q=0.8,*/*;q=0.7")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", shoplens.Errorf(shoplens.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", shoplens.Errorf(shoplens.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", shoplens.Errorf(shoplens.EUNAVAILABLE, "reading %s: %v", url, err)
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

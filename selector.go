package shoplens

import "context"

// NavSelector extracts the primary navigation menu from HTML.
//
// Selectors are heuristic strategies: the scraper tries an ordered list and
// stops at the first one that yields entries. Each selector is named so
// logs can report which heuristic matched.
type NavSelector interface {
	// ExtractNav parses HTML and returns menu entries in document order.
	// Relative hrefs are resolved against baseURL. Finding no navigation
	// region returns an empty slice, not an error.
	ExtractNav(html string, baseURL string) ([]NavEntry, error)

	// Name returns the selector's identifier (e.g., "landmark", "menu-class").
	Name() string
}

// CardSelector extracts products from listing-page HTML via product-card
// heuristics. Like NavSelector, implementations form an ordered strategy
// list tried until one succeeds.
type CardSelector interface {
	// ExtractProducts parses HTML and returns products in document order.
	// Relative URLs are resolved against baseURL.
	ExtractProducts(html string, baseURL string) ([]Product, error)

	// Name returns the selector's identifier (e.g., "card", "product-link").
	Name() string
}

// ProductSource discovers product page URLs published outside the HTML,
// such as a store's product sitemap shards.
type ProductSource interface {
	// DiscoverProducts returns products known to the source for the site at
	// baseURL. Entries typically carry title, URL, and image but no price.
	DiscoverProducts(ctx context.Context, baseURL string) ([]Product, error)
}

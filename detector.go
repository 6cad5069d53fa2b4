package shoplens

// Platform identifies the e-commerce platform serving a storefront.
type Platform string

// Recognized platforms. An unknown platform never aborts a scan; it only
// signals that extraction heuristics may not match the site's markup.
const (
	PlatformUnknown Platform = "unknown"
	PlatformShopify Platform = "shopify"
)

// PlatformDetector identifies the storefront platform from raw HTML.
type PlatformDetector interface {
	// Detect analyzes HTML and returns the identified platform.
	// It is a pure function: no I/O, no side effects.
	Detect(html string) Platform
}

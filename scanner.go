package shoplens

// Scanner applies DOM pattern-matching heuristics to already-fetched HTML.
// All methods are pure: no I/O, best-effort, returning zero values when
// nothing matches.
type Scanner interface {
	// StoreName extracts the store's display name from page metadata,
	// falling back to a name derived from the domain.
	StoreName(html string, baseURL string) string

	// Contact extracts emails, phone numbers, and social profile links.
	Contact(html string, baseURL string) ContactInfo

	// FAQs segments an FAQ-style page into question/answer pairs.
	// Returns nil when the page exposes no recognizable structure.
	FAQs(html string) []FAQ

	// ImportantLinks finds categorized site links (order tracking, blog,
	// support, ...) in the page's anchors.
	ImportantLinks(html string, baseURL string) []SiteLink
}

package shoplens

// Insight is the aggregate result of scanning a storefront. It is always
// produced once the home page fetch succeeds; individual fields default to
// empty when their extraction stage found nothing or failed, and Warnings
// records every stage that was skipped or degraded.
type Insight struct {
	StoreName      string      `json:"store_name"`
	WebsiteURL     string      `json:"website_url"`
	Platform       Platform    `json:"platform"`
	Products       []Product   `json:"products"`
	HeroProducts   []Product   `json:"hero_products,omitempty"`
	Policies       PolicySet   `json:"policies,omitempty"`
	Brand          BrandInfo   `json:"brand"`
	Contact        ContactInfo `json:"contact"`
	Navigation     []NavEntry  `json:"navigation"`
	ImportantLinks []SiteLink  `json:"important_links,omitempty"`
	Warnings       []string    `json:"warnings"`
}

// Product is a single catalog entry. Price is kept as the raw currency
// string encountered at the source; no normalization is performed.
type Product struct {
	Title     string `json:"title"`
	Price     string `json:"price,omitempty"`
	URL       string `json:"url"`
	ImageURL  string `json:"image_url,omitempty"`
	Vendor    string `json:"vendor,omitempty"`
	Available bool   `json:"available,omitempty"`
}

// PolicyKind identifies a legal/informational policy page.
type PolicyKind string

// Known policy kinds.
const (
	PolicyPrivacy  PolicyKind = "privacy"
	PolicyReturns  PolicyKind = "returns"
	PolicyShipping PolicyKind = "shipping"
	PolicyTerms    PolicyKind = "terms"
)

// PolicyKinds returns all known policy kinds in a stable order.
func PolicyKinds() []PolicyKind {
	return []PolicyKind{PolicyPrivacy, PolicyReturns, PolicyShipping, PolicyTerms}
}

// Policy is the extracted prose of a single policy page.
type Policy struct {
	// Content is the page's main text reduced to Markdown.
	Content string `json:"content"`

	// SourceURL is the candidate path where the policy was found.
	SourceURL string `json:"source_url"`

	// ContentHash is a deterministic fingerprint of Content, usable for
	// change detection between scans.
	ContentHash string `json:"content_hash"`
}

// PolicySet maps policy kinds to their extracted content. The map is
// partial by design: a missing key means the policy was not found, which
// is distinct from a policy that was found empty.
type PolicySet map[PolicyKind]Policy

// BrandInfo holds "about us" prose and any FAQs recovered from the site.
type BrandInfo struct {
	About     string `json:"about,omitempty"`
	FAQs      []FAQ  `json:"faqs,omitempty"`
	SourceURL string `json:"source_url,omitempty"`
}

// FAQ is a single question/answer pair.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ContactInfo holds contact details discovered on the home page and, when
// reachable, a dedicated contact page. Slices are sorted and deduplicated.
type ContactInfo struct {
	Emails  []string `json:"emails,omitempty"`
	Phones  []string `json:"phones,omitempty"`
	Socials []string `json:"socials,omitempty"`
}

// NavEntry is one labeled link from the primary navigation menu, in
// document order.
type NavEntry struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// SiteLink is a categorized important link (order tracking, blog, etc.).
type SiteLink struct {
	Category string `json:"category"`
	Title    string `json:"title"`
	URL      string `json:"url"`
}

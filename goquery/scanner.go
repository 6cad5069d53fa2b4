package goquery

import "github.com/fwojciec/shoplens"

// Ensure Scanner implements shoplens.Scanner at compile time.
var _ shoplens.Scanner = (*Scanner)(nil)

// Scanner bundles the package's pure HTML heuristics behind the
// shoplens.Scanner interface.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// StoreName extracts the store's display name from page metadata.
func (s *Scanner) StoreName(html string, baseURL string) string {
	return StoreName(html, baseURL)
}

// Contact extracts emails, phone numbers, and social profile links.
func (s *Scanner) Contact(html string, baseURL string) shoplens.ContactInfo {
	return shoplens.ContactInfo{
		Emails:  Emails(html),
		Phones:  Phones(html),
		Socials: SocialLinks(html, baseURL),
	}
}

// FAQs segments an FAQ-style page into question/answer pairs.
func (s *Scanner) FAQs(html string) []shoplens.FAQ {
	return SegmentFAQs(html)
}

// ImportantLinks finds categorized site links in the page's anchors.
func (s *Scanner) ImportantLinks(html string, baseURL string) []shoplens.SiteLink {
	return ImportantLinks(html, baseURL)
}

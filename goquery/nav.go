package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/shoplens"
)

// Compile-time interface verification for all navigation strategies.
var (
	_ shoplens.NavSelector = (*LandmarkNavSelector)(nil)
	_ shoplens.NavSelector = (*MenuClassNavSelector)(nil)
	_ shoplens.NavSelector = (*HeaderNavSelector)(nil)
)

// NavSelectors returns the navigation strategies in priority order.
// The scraper tries them in order and stops at the first one that yields
// entries.
func NavSelectors() []shoplens.NavSelector {
	return []shoplens.NavSelector{
		NewLandmarkNavSelector(),
		NewMenuClassNavSelector(),
		NewHeaderNavSelector(),
	}
}

// LandmarkNavSelector reads the primary menu from semantic navigation
// landmarks: <nav> elements and [role="navigation"] regions. Header navs
// are preferred over footer navs.
type LandmarkNavSelector struct{}

// NewLandmarkNavSelector creates a new LandmarkNavSelector.
func NewLandmarkNavSelector() *LandmarkNavSelector {
	return &LandmarkNavSelector{}
}

// Name returns the selector's identifier.
func (s *LandmarkNavSelector) Name() string {
	return "landmark"
}

// ExtractNav parses HTML and returns menu entries in document order.
func (s *LandmarkNavSelector) ExtractNav(html string, baseURL string) ([]shoplens.NavEntry, error) {
	return extractNavFromRegions(html, baseURL, []string{
		"header nav",
		"nav[aria-label]",
		"nav",
		"[role='navigation']",
	})
}

// MenuClassNavSelector reads the menu from common theme class and id name
// patterns. Shopify themes rarely agree on markup but reuse a small set of
// names for the header menu.
type MenuClassNavSelector struct{}

// NewMenuClassNavSelector creates a new MenuClassNavSelector.
func NewMenuClassNavSelector() *MenuClassNavSelector {
	return &MenuClassNavSelector{}
}

// Name returns the selector's identifier.
func (s *MenuClassNavSelector) Name() string {
	return "menu-class"
}

// ExtractNav parses HTML and returns menu entries in document order.
func (s *MenuClassNavSelector) ExtractNav(html string, baseURL string) ([]shoplens.NavEntry, error) {
	return extractNavFromRegions(html, baseURL, []string{
		".site-nav",
		".header__inline-menu",
		".main-menu",
		".main-nav",
		"#MainNav",
		"#AccessibleNav",
		".navigation",
		".navbar",
		".menu",
	})
}

// HeaderNavSelector is the last-resort strategy: any anchors inside the
// page header.
type HeaderNavSelector struct{}

// NewHeaderNavSelector creates a new HeaderNavSelector.
func NewHeaderNavSelector() *HeaderNavSelector {
	return &HeaderNavSelector{}
}

// Name returns the selector's identifier.
func (s *HeaderNavSelector) Name() string {
	return "header"
}

// ExtractNav parses HTML and returns menu entries in document order.
func (s *HeaderNavSelector) ExtractNav(html string, baseURL string) ([]shoplens.NavEntry, error) {
	return extractNavFromRegions(html, baseURL, []string{
		"header",
		".header",
		"#header",
	})
}

// extractNavFromRegions tries each region selector in order and collects
// anchors from the first region that yields entries. Entries keep document
// order and are deduplicated by resolved URL.
func extractNavFromRegions(html string, baseURL string, regions []string) ([]shoplens.NavEntry, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, shoplens.Errorf(shoplens.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, shoplens.Errorf(shoplens.EINVALID, "failed to parse HTML: %v", err)
	}

	for _, region := range regions {
		entries := collectAnchors(doc.Find(region).First(), base)
		if len(entries) > 0 {
			return entries, nil
		}
	}

	return []shoplens.NavEntry{}, nil
}

// collectAnchors reads labeled anchors under sel in document order.
func collectAnchors(sel *goquery.Selection, base *url.URL) []shoplens.NavEntry {
	seen := make(map[string]bool)
	var entries []shoplens.NavEntry

	sel.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href := a.AttrOr("href", "")
		if href == "" || isNonHTTPLink(href) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" || seen[resolved] {
			return
		}

		label := strings.Join(strings.Fields(a.Text()), " ")
		if label == "" {
			return
		}

		seen[resolved] = true
		entries = append(entries, shoplens.NavEntry{
			Label: label,
			URL:   resolved,
		})
	})

	return entries
}

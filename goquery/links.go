package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/shoplens"
)

// linkCategory pairs a category name with the keywords that identify it in
// an anchor's href or text.
type linkCategory struct {
	name     string
	keywords []string
}

// linkCategories is ordered; earlier categories claim a link first.
var linkCategories = []linkCategory{
	{"order_tracking", []string{"track", "tracking", "order-status", "track-order"}},
	{"blog", []string{"blog", "news", "articles"}},
	{"support", []string{"support", "help", "customer-service"}},
	{"shipping", []string{"shipping", "delivery"}},
	{"size_guide", []string{"size-guide", "sizing", "size-chart"}},
	{"gift_cards", []string{"gift-card", "gift-cards"}},
	{"wholesale", []string{"wholesale", "trade", "bulk"}},
}

// ImportantLinks finds categorized site links (order tracking, blog,
// support, ...) by scanning navigation, header, and footer anchors first
// and the rest of the page after. Links are deduplicated by URL and
// returned in category order.
func ImportantLinks(html string, baseURL string) []shoplens.SiteLink {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var anchors []*goquery.Selection
	doc.Find("nav a[href], header a[href], footer a[href]").Each(func(_ int, a *goquery.Selection) {
		anchors = append(anchors, a)
	})
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		anchors = append(anchors, a)
	})

	seen := make(map[string]bool)
	var links []shoplens.SiteLink

	for _, category := range linkCategories {
		for _, a := range anchors {
			href := a.AttrOr("href", "")
			if href == "" || isNonHTTPLink(href) {
				continue
			}

			text := strings.Join(strings.Fields(a.Text()), " ")
			if !matchesKeywords(strings.ToLower(href), strings.ToLower(text), category.keywords) {
				continue
			}

			resolved := resolveURL(base, href)
			if resolved == "" || seen[resolved] {
				continue
			}
			seen[resolved] = true

			links = append(links, shoplens.SiteLink{
				Category: category.name,
				Title:    text,
				URL:      resolved,
			})
		}
	}

	return links
}

// matchesKeywords reports whether any keyword occurs in the href or text.
func matchesKeywords(href, text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(href, keyword) || strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

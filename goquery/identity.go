package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// titleSuffixRe strips trailing "– Shop"/"| Online Store" style suffixes
// that Shopify themes append to the title tag.
var titleSuffixRe = regexp.MustCompile(`(?i)\s*[-–|]\s*(Shop|Store|Online|eCommerce).*$`)

// StoreName extracts the store's display name from page metadata.
//
// Sources are tried in order of reliability: the title tag (with common
// commerce suffixes stripped), the og:site_name meta property, the first
// meaningful logo alt text, and finally a name derived from the domain.
func StoreName(html string, baseURL string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return domainName(baseURL)
	}

	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		if cleaned := strings.TrimSpace(titleSuffixRe.ReplaceAllString(title, "")); cleaned != "" {
			return cleaned
		}
	}

	if siteName, exists := doc.Find("meta[property='og:site_name']").First().Attr("content"); exists {
		if cleaned := strings.TrimSpace(siteName); cleaned != "" {
			return cleaned
		}
	}

	name := ""
	doc.Find("img[alt]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		alt := strings.TrimSpace(s.AttrOr("alt", ""))
		lower := strings.ToLower(alt)
		if alt == "" || lower == "logo" || lower == "image" {
			return true
		}
		name = alt
		return false
	})
	if name != "" {
		return name
	}

	return domainName(baseURL)
}

// domainName derives a fallback store name from the site's domain,
// e.g. "www.acme-goods.com" -> "Acme-goods".
func domainName(baseURL string) string {
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	host := strings.TrimPrefix(parsed.Host, "www.")
	host = strings.TrimSuffix(host, ".myshopify.com")
	if idx := strings.Index(host, "."); idx != -1 {
		host = host[:idx]
	}
	if host == "" {
		return ""
	}
	return strings.ToUpper(host[:1]) + host[1:]
}

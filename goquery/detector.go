// Package goquery implements the DOM-heuristic parts of shoplens using CSS
// selectors: platform detection, store identity, navigation and
// product-card strategies, FAQ segmentation, and contact scanning.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/shoplens"
)

// Ensure Detector implements shoplens.PlatformDetector at compile time.
var _ shoplens.PlatformDetector = (*Detector)(nil)

// Detector identifies the e-commerce platform from HTML content.
// It checks for platform-specific asset hosts, theme globals, meta tags,
// and structural markers.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// shopifyMarkers are substrings that only appear in Shopify-served pages.
var shopifyMarkers = []string{
	"cdn.shopify.com",
	"Shopify.theme",
	"shopify-section",
	"myshopify.com",
}

// Detect analyzes HTML and returns the identified platform.
// Returns PlatformUnknown if no signature is found; callers decide whether
// to continue in degraded generic mode.
func (d *Detector) Detect(html string) shoplens.Platform {
	for _, marker := range shopifyMarkers {
		if strings.Contains(html, marker) {
			return shoplens.PlatformShopify
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return shoplens.PlatformUnknown
	}

	// Checkout API token meta is injected by Shopify's theme layer
	if doc.Find("meta[name='shopify-checkout-api-token']").Length() > 0 {
		return shoplens.PlatformShopify
	}

	if generator := metaGenerator(doc); strings.Contains(generator, "shopify") {
		return shoplens.PlatformShopify
	}

	return shoplens.PlatformUnknown
}

// metaGenerator returns the lowercased content of the meta generator tag.
func metaGenerator(doc *goquery.Document) string {
	generator := ""
	doc.Find("meta[name='generator']").Each(func(_ int, s *goquery.Selection) {
		if content, exists := s.Attr("content"); exists {
			generator = strings.ToLower(content)
		}
	})
	return generator
}

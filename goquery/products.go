package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/shoplens"
)

// Compile-time interface verification for all product-card strategies.
var (
	_ shoplens.CardSelector = (*ProductCardSelector)(nil)
	_ shoplens.CardSelector = (*ProductLinkSelector)(nil)
)

// CardSelectors returns the product-card strategies in priority order.
func CardSelectors() []shoplens.CardSelector {
	return []shoplens.CardSelector{
		NewProductCardSelector(),
		NewProductLinkSelector(),
	}
}

// priceRe matches currency-prefixed amounts ("$19.99", "€ 1.299,00",
// "Rs. 450") as they appear in listing markup.
var priceRe = regexp.MustCompile(`(?:[$€£¥₹]|USD|EUR|GBP|Rs\.?)\s*\d[\d,.]*`)

// cardRegionSelectors are class name patterns Shopify themes use for
// product cards on listing pages.
var cardRegionSelectors = []string{
	".product-card",
	".card--product",
	".grid__item",
	".grid-product",
	"[class*='product-item']",
	"li.product",
}

// ProductCardSelector extracts products from card-shaped listing markup:
// a region with a product link, a title, price-like text, and usually an
// image.
type ProductCardSelector struct{}

// NewProductCardSelector creates a new ProductCardSelector.
func NewProductCardSelector() *ProductCardSelector {
	return &ProductCardSelector{}
}

// Name returns the selector's identifier.
func (s *ProductCardSelector) Name() string {
	return "card"
}

// ExtractProducts parses HTML and returns products in document order.
func (s *ProductCardSelector) ExtractProducts(html string, baseURL string) ([]shoplens.Product, error) {
	base, doc, err := parseWithBase(html, baseURL)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var products []shoplens.Product

	for _, region := range cardRegionSelectors {
		doc.Find(region).Each(func(_ int, card *goquery.Selection) {
			link := card.Find("a[href*='/products/']").First()
			href := link.AttrOr("href", "")
			if href == "" {
				return
			}

			resolved := resolveURL(base, href)
			if resolved == "" || seen[resolved] {
				return
			}

			product := shoplens.Product{
				URL:      resolved,
				Title:    cardTitle(card, link),
				Price:    cardPrice(card),
				ImageURL: cardImage(card, base),
			}
			// A card without a recognizable price is not a product card;
			// leave it for the link-based fallback strategy.
			if product.Price == "" || product.Title == "" {
				return
			}

			seen[resolved] = true
			products = append(products, product)
		})
		if len(products) > 0 {
			break
		}
	}

	return products, nil
}

// ProductLinkSelector is the fallback strategy: any anchor pointing at a
// /products/ page, with title, image, and price recovered from the anchor
// and its surroundings when present.
type ProductLinkSelector struct{}

// NewProductLinkSelector creates a new ProductLinkSelector.
func NewProductLinkSelector() *ProductLinkSelector {
	return &ProductLinkSelector{}
}

// Name returns the selector's identifier.
func (s *ProductLinkSelector) Name() string {
	return "product-link"
}

// ExtractProducts parses HTML and returns products in document order.
func (s *ProductLinkSelector) ExtractProducts(html string, baseURL string) ([]shoplens.Product, error) {
	base, doc, err := parseWithBase(html, baseURL)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var products []shoplens.Product

	doc.Find("a[href*='/products/']").Each(func(_ int, link *goquery.Selection) {
		href := link.AttrOr("href", "")
		resolved := resolveURL(base, href)
		if resolved == "" || seen[resolved] {
			return
		}

		product := shoplens.Product{
			URL:      resolved,
			Title:    cardTitle(link, link),
			Price:    cardPrice(link.Parent()),
			ImageURL: cardImage(link, base),
		}
		if product.Title == "" && product.ImageURL == "" {
			return
		}

		seen[resolved] = true
		products = append(products, product)
	})

	return products, nil
}

// parseWithBase parses the base URL and the HTML document.
func parseWithBase(html string, baseURL string) (*url.URL, *goquery.Document, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, nil, shoplens.Errorf(shoplens.EINVALID, "invalid base URL: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, nil, shoplens.Errorf(shoplens.EINVALID, "failed to parse HTML: %v", err)
	}
	return base, doc, nil
}

// cardTitle recovers a product title from the card's heading, the link
// text, or the image alt text, in that order.
func cardTitle(card, link *goquery.Selection) string {
	for _, sel := range []string{"h1", "h2", "h3", "h4", "[class*='title']"} {
		if title := strings.Join(strings.Fields(card.Find(sel).First().Text()), " "); title != "" {
			return title
		}
	}
	if title := strings.Join(strings.Fields(link.Text()), " "); title != "" && !priceRe.MatchString(title) {
		return title
	}
	return strings.TrimSpace(card.Find("img[alt]").First().AttrOr("alt", ""))
}

// cardPrice finds price-like text inside the card, preferring elements
// with a price class.
func cardPrice(card *goquery.Selection) string {
	priced := card.Find("[class*='price']").First()
	if match := priceRe.FindString(priced.Text()); match != "" {
		return strings.TrimSpace(match)
	}
	return strings.TrimSpace(priceRe.FindString(card.Text()))
}

// cardImage returns the card's first image URL, resolved against base.
// Lazy-loaded themes put the real URL in data-src.
func cardImage(card *goquery.Selection, base *url.URL) string {
	img := card.Find("img").First()
	src := img.AttrOr("src", "")
	if src == "" {
		src = img.AttrOr("data-src", "")
	}
	if src == "" {
		return ""
	}
	return resolveURL(base, src)
}

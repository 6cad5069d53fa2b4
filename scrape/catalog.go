package scrape

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fwojciec/shoplens"
)

// productsPayload mirrors the shape of Shopify's /products.json endpoint,
// reduced to the fields the catalog needs.
type productsPayload struct {
	Products []jsonProduct `json:"products"`
}

type jsonProduct struct {
	Title  string `json:"title"`
	Handle string `json:"handle"`
	Vendor string `json:"vendor"`
	Images []struct {
		Src string `json:"src"`
	} `json:"images"`
	Variants []struct {
		Price     string `json:"price"`
		Available bool   `json:"available"`
	} `json:"variants"`
}

// extractCatalog assembles the product catalog.
//
// The structured /products.json endpoint is tried first and short-circuits
// everything else. When it is absent or malformed, the listing page is
// scraped with the card strategies, and as a last resort products are
// discovered from the store's sitemap shards. Per-product failures are
// skipped individually and recorded as warnings.
func (s *Scraper) extractCatalog(ctx context.Context, baseURL, homeHTML string) ([]shoplens.Product, []string) {
	var warnings []string

	products, jsonWarnings, ok := s.catalogFromJSON(ctx, baseURL)
	warnings = append(warnings, jsonWarnings...)
	if ok {
		return products, warnings
	}

	products = s.catalogFromListing(ctx, baseURL, homeHTML)
	if len(products) > 0 {
		return products, warnings
	}

	if s.Products != nil {
		discovered, err := s.Products.DiscoverProducts(ctx, baseURL)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("sitemap product discovery failed: %s", shoplens.ErrorMessage(err)))
		} else if len(discovered) > 0 {
			return discovered, warnings
		}
	}

	warnings = append(warnings, "no products found")
	return []shoplens.Product{}, warnings
}

// catalogFromJSON maps /products.json entries to products. The bool result
// reports whether the endpoint yielded a usable catalog; false means the
// caller should fall back to scraping.
func (s *Scraper) catalogFromJSON(ctx context.Context, baseURL string) ([]shoplens.Product, []string, bool) {
	body, err := s.fetch(ctx, baseURL+"/products.json")
	if err != nil {
		return nil, []string{fmt.Sprintf("products.json: %s", shoplens.ErrorMessage(err))}, false
	}

	var payload productsPayload
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return nil, []string{fmt.Sprintf("products.json: invalid JSON: %v", err)}, false
	}
	if len(payload.Products) == 0 {
		return nil, []string{"products.json: empty catalog"}, false
	}

	var warnings []string
	products := make([]shoplens.Product, 0, len(payload.Products))
	for i, entry := range payload.Products {
		if entry.Title == "" || entry.Handle == "" {
			warnings = append(warnings, fmt.Sprintf("products.json: skipped entry %d: missing title or handle", i))
			continue
		}

		product := shoplens.Product{
			Title:  entry.Title,
			URL:    baseURL + "/products/" + entry.Handle,
			Vendor: entry.Vendor,
		}
		if len(entry.Variants) > 0 {
			product.Price = entry.Variants[0].Price
			for _, variant := range entry.Variants {
				if variant.Available {
					product.Available = true
					break
				}
			}
		}
		if len(entry.Images) > 0 {
			product.ImageURL = entry.Images[0].Src
		}

		products = append(products, product)
	}

	return products, warnings, len(products) > 0
}

// catalogFromListing scrapes product cards from the canonical listing page,
// falling back to the already-fetched home page when the listing is
// unreachable. Card strategies run in priority order; the first one that
// yields products wins.
func (s *Scraper) catalogFromListing(ctx context.Context, baseURL, homeHTML string) []shoplens.Product {
	listing, err := s.fetch(ctx, baseURL+"/collections/all")
	if err != nil {
		listing = homeHTML
	}

	for _, selector := range s.CardSelectors {
		products, err := selector.ExtractProducts(listing, baseURL)
		if err == nil && len(products) > 0 {
			return products
		}
	}
	return nil
}

// extractHeroProducts reads featured products off the home page, capped at
// maxHeroProducts. Duplicates against the catalog are removed at merge.
func (s *Scraper) extractHeroProducts(homeHTML, baseURL string) ([]shoplens.Product, []string) {
	for _, selector := range s.CardSelectors {
		products, err := selector.ExtractProducts(homeHTML, baseURL)
		if err != nil || len(products) == 0 {
			continue
		}
		if len(products) > maxHeroProducts {
			products = products[:maxHeroProducts]
		}
		return products, nil
	}
	return nil, nil
}

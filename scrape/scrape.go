// Package scrape orchestrates storefront insight extraction. It sequences
// URL validation, the home page fetch, platform detection, and the
// independent category extractors, merging their partial results into a
// single shoplens.Insight.
package scrape

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/shoplens"
	"golang.org/x/sync/errgroup"
)

// Ensure Scraper implements shoplens.InsightService at compile time.
var _ shoplens.InsightService = (*Scraper)(nil)

// Scraper holds the injected dependencies for a scan. Every field except
// Products and Limiter is required. A Scraper carries no per-scan state;
// it is safe for concurrent use.
type Scraper struct {
	Fetcher       shoplens.Fetcher
	Detector      shoplens.PlatformDetector
	Scanner       shoplens.Scanner
	Prose         []shoplens.ProseExtractor // tried in order until one yields content
	Converter     shoplens.Converter
	NavSelectors  []shoplens.NavSelector
	CardSelectors []shoplens.CardSelector
	Products      shoplens.ProductSource // optional sitemap fallback
	Limiter       shoplens.DomainLimiter // optional outbound pacing
}

// maxHeroProducts caps how many featured products are read off the home
// page.
const maxHeroProducts = 6

// BuildInsight scans the storefront at rawURL and returns its insight.
//
// Errors are limited to EINVALID (bad input, returned before any network
// call) and EUNREACHABLE (the home page fetch failed). Every other failure
// is absorbed by its extraction stage: the corresponding field stays empty
// and a warning is recorded.
func (s *Scraper) BuildInsight(ctx context.Context, rawURL string) (*shoplens.Insight, error) {
	baseURL, err := NormalizeURL(rawURL)
	if err != nil {
		return nil, err
	}

	home, err := s.fetch(ctx, baseURL)
	if err != nil {
		return nil, shoplens.Errorf(shoplens.EUNREACHABLE, "store %s is unreachable: %v", baseURL, shoplens.ErrorMessage(err))
	}

	platform := s.Detector.Detect(home)

	// The category extractors depend only on the home page and their own
	// network calls, so they fan out concurrently. Each writes a disjoint
	// stage result; failures stay local to their stage.
	var (
		catalog stage[[]shoplens.Product]
		hero    stage[[]shoplens.Product]
		polices stage[shoplens.PolicySet]
		brand   stage[shoplens.BrandInfo]
		contact stage[shoplens.ContactInfo]
		nav     stage[[]shoplens.NavEntry]
		links   stage[[]shoplens.SiteLink]
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(runStage("catalog", &catalog, func() ([]shoplens.Product, []string) {
		return s.extractCatalog(gctx, baseURL, home)
	}))
	g.Go(runStage("hero products", &hero, func() ([]shoplens.Product, []string) {
		return s.extractHeroProducts(home, baseURL)
	}))
	g.Go(runStage("policies", &polices, func() (shoplens.PolicySet, []string) {
		return s.extractPolicies(gctx, baseURL)
	}))
	g.Go(runStage("brand", &brand, func() (shoplens.BrandInfo, []string) {
		return s.extractBrand(gctx, baseURL)
	}))
	g.Go(runStage("contact", &contact, func() (shoplens.ContactInfo, []string) {
		return s.extractContact(gctx, home, baseURL)
	}))
	g.Go(runStage("navigation", &nav, func() ([]shoplens.NavEntry, []string) {
		return s.extractNavigation(home, baseURL)
	}))
	g.Go(runStage("important links", &links, func() ([]shoplens.SiteLink, []string) {
		return s.Scanner.ImportantLinks(home, baseURL), nil
	}))

	// Stages never return errors; Wait only observes context cancellation.
	_ = g.Wait()

	insight := &shoplens.Insight{
		StoreName:      s.Scanner.StoreName(home, baseURL),
		WebsiteURL:     baseURL,
		Platform:       platform,
		Products:       catalog.value,
		HeroProducts:   dedupeByURL(hero.value, catalog.value),
		Policies:       polices.value,
		Brand:          brand.value,
		Contact:        contact.value,
		Navigation:     nav.value,
		ImportantLinks: links.value,
		Warnings:       []string{},
	}
	if insight.Products == nil {
		insight.Products = []shoplens.Product{}
	}
	if insight.Navigation == nil {
		insight.Navigation = []shoplens.NavEntry{}
	}

	if platform != shoplens.PlatformShopify {
		insight.Warnings = append(insight.Warnings, "no Shopify signature detected; extraction ran in generic mode")
	}
	// Warnings merge in a fixed stage order so repeated scans of identical
	// responses yield identical results.
	for _, st := range []interface{ warningList() []string }{
		&catalog, &hero, &polices, &brand, &contact, &nav, &links,
	} {
		insight.Warnings = append(insight.Warnings, st.warningList()...)
	}

	return insight, nil
}

// stage holds one extractor's partial result and its warnings.
type stage[T any] struct {
	value    T
	warnings []string
}

func (s *stage[T]) warningList() []string { return s.warnings }

// runStage wraps an extractor so that a panic inside it degrades to a
// warning instead of aborting the other stages.
func runStage[T any](name string, out *stage[T], fn func() (T, []string)) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				out.warnings = append(out.warnings, fmt.Sprintf("%s extraction failed: %v", name, r))
			}
		}()
		out.value, out.warnings = fn()
		return nil
	}
}

// fetch routes a request through the domain limiter when one is
// configured.
func (s *Scraper) fetch(ctx context.Context, rawURL string) (string, error) {
	if s.Limiter != nil {
		parsed, err := url.Parse(rawURL)
		if err != nil {
			return "", shoplens.Errorf(shoplens.EINVALID, "invalid URL %q: %v", rawURL, err)
		}
		if err := s.Limiter.Wait(ctx, parsed.Host); err != nil {
			return "", err
		}
	}
	return s.Fetcher.Fetch(ctx, rawURL)
}

// NormalizeURL validates raw input and reduces it to the store's base URL
// (scheme and host only). A missing scheme defaults to https. Returns an
// EINVALID error for empty or unparsable input; no network is touched.
func NormalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", shoplens.Errorf(shoplens.EINVALID, "website URL is required")
	}

	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", shoplens.Errorf(shoplens.EINVALID, "invalid website URL %q: %v", raw, err)
	}
	if parsed.Host == "" {
		return "", shoplens.Errorf(shoplens.EINVALID, "website URL %q has no host", raw)
	}

	return parsed.Scheme + "://" + parsed.Host, nil
}

// dedupeByURL drops entries from products whose URL already appears in
// existing. Catalog entries win over hero duplicates.
func dedupeByURL(products, existing []shoplens.Product) []shoplens.Product {
	if len(products) == 0 {
		return products
	}
	seen := make(map[string]bool, len(existing))
	for _, p := range existing {
		seen[p.URL] = true
	}
	var out []shoplens.Product
	for _, p := range products {
		if seen[p.URL] {
			continue
		}
		seen[p.URL] = true
		out = append(out, p)
	}
	return out
}

// Fingerprint returns a deterministic hash of an insight, usable for
// change detection between scans of the same store.
func Fingerprint(insight *shoplens.Insight) string {
	encoded, err := json.Marshal(insight)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%x", xxhash.Sum64(encoded))
}

package http

import (
	"bufio"
	"context"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/shoplens"
	"github.com/fwojciec/shoplens/bloom"
)

// Ensure ProductSitemap implements shoplens.ProductSource.
var _ shoplens.ProductSource = (*ProductSitemap)(nil)

// Sitemap sizing for Bloom filter deduplication across shards.
// Shopify caps each product sitemap shard at 50k URLs; most stores are
// far smaller.
const (
	sitemapExpectedURLs      = 50000
	sitemapFalsePositiveRate = 0.01
)

// maxSitemapProducts bounds how many products a single discovery pass
// returns, keeping worst-case scans on very large stores cheap.
const maxSitemapProducts = 250

// ProductSitemap discovers products from a storefront's sitemap shards.
// Shopify publishes sitemap_products_N.xml files listing every product URL
// together with its image and title, which makes the sitemap a usable
// catalog source when /products.json is disabled.
type ProductSitemap struct {
	fetcher shoplens.Fetcher
}

// NewProductSitemap creates a ProductSitemap using the given fetcher for
// all outbound requests.
func NewProductSitemap(fetcher shoplens.Fetcher) *ProductSitemap {
	return &ProductSitemap{fetcher: fetcher}
}

// DiscoverProducts finds product entries from the site's sitemaps.
// Returns an empty slice (not nil) when no sitemaps are found. Entries
// carry title, URL, and image but never a price; prices only exist on
// product pages and in /products.json.
func (s *ProductSitemap) DiscoverProducts(ctx context.Context, baseURL string) ([]shoplens.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, shoplens.Errorf(shoplens.EINVALID, "invalid base URL: %v", err)
	}
	base.Path = ""

	sitemapURLs, err := s.findSitemapURLs(ctx, base)
	if err != nil {
		return nil, err
	}
	if len(sitemapURLs) == 0 {
		return []shoplens.Product{}, nil
	}

	seenSitemaps := make(map[string]bool)
	seenProducts := bloom.NewFilter(sitemapExpectedURLs, sitemapFalsePositiveRate)

	products := []shoplens.Product{}
	for _, sitemapURL := range sitemapURLs {
		found, err := s.processSitemap(ctx, sitemapURL, seenSitemaps)
		if err != nil {
			return nil, err
		}
		for _, p := range found {
			if seenProducts.Test(p.URL) {
				continue
			}
			seenProducts.Add(p.URL)
			products = append(products, p)
			if len(products) >= maxSitemapProducts {
				return products, nil
			}
		}
	}

	return products, nil
}

// findSitemapURLs discovers sitemap URLs from robots.txt or falls back to
// /sitemap.xml.
func (s *ProductSitemap) findSitemapURLs(ctx context.Context, base *url.URL) ([]string, error) {
	robotsURL := base.ResolveReference(&url.URL{Path: "/robots.txt"})
	sitemaps, err := s.parseSitemapsFromRobots(ctx, robotsURL.String())
	if err == nil && len(sitemaps) > 0 {
		return sitemaps, nil
	}

	sitemapURL := base.ResolveReference(&url.URL{Path: "/sitemap.xml"}).String()
	if _, err := s.fetcher.Fetch(ctx, sitemapURL); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nil
	}
	return []string{sitemapURL}, nil
}

// parseSitemapsFromRobots extracts Sitemap: directives from robots.txt.
func (s *ProductSitemap) parseSitemapsFromRobots(ctx context.Context, robotsURL string) ([]string, error) {
	body, err := s.fetcher.Fetch(ctx, robotsURL)
	if err != nil {
		return nil, err
	}

	var sitemaps []string
	scanner := bufio.NewScanner(strings.NewReader(body))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		// Case-insensitive check for Sitemap: directive
		if strings.HasPrefix(strings.ToLower(line), "sitemap:") {
			sitemapURL := strings.TrimSpace(line[8:]) // len("sitemap:") == 8
			if sitemapURL != "" {
				sitemaps = append(sitemaps, sitemapURL)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, shoplens.Errorf(shoplens.EINTERNAL, "reading robots.txt: %v", err)
	}

	return sitemaps, nil
}

// processSitemap fetches and parses a sitemap, handling both urlset and
// sitemapindex documents.
func (s *ProductSitemap) processSitemap(ctx context.Context, sitemapURL string, seen map[string]bool) ([]shoplens.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Avoid processing the same sitemap twice
	if seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := s.fetcher.Fetch(ctx, sitemapURL)
	if err != nil {
		// A missing shard is not fatal to discovery as a whole.
		return nil, nil
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(body); err != nil {
		return nil, shoplens.Errorf(shoplens.EINTERNAL, "parsing sitemap XML: %v", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, shoplens.Errorf(shoplens.EINTERNAL, "empty sitemap XML")
	}

	if root.Tag == "sitemapindex" {
		return s.processSitemapIndex(ctx, root, seen)
	}

	return parseProductURLSet(root), nil
}

// processSitemapIndex recursively processes a <sitemapindex>, following
// only shards that can contain product URLs.
func (s *ProductSitemap) processSitemapIndex(ctx context.Context, root *etree.Element, seen map[string]bool) ([]shoplens.Product, error) {
	var all []shoplens.Product

	for _, sitemap := range root.SelectElements("sitemap") {
		loc := sitemap.SelectElement("loc")
		if loc == nil {
			continue
		}
		shardURL := strings.TrimSpace(loc.Text())
		if shardURL == "" {
			continue
		}
		// Shopify names product shards sitemap_products_N.xml; skipping
		// pages/collections/blogs shards saves most of the fetches.
		if strings.Contains(shardURL, "sitemap_") && !strings.Contains(shardURL, "sitemap_products") {
			continue
		}

		products, err := s.processSitemap(ctx, shardURL, seen)
		if err != nil {
			return nil, err
		}
		all = append(all, products...)
	}

	return all, nil
}

// parseProductURLSet extracts product entries from a <urlset> element.
// Only URLs under /products/ qualify; Shopify attaches the product title
// and image via the sitemap image extension.
func parseProductURLSet(root *etree.Element) []shoplens.Product {
	var products []shoplens.Product
	for _, urlEl := range root.SelectElements("url") {
		loc := urlEl.SelectElement("loc")
		if loc == nil {
			continue
		}
		u := strings.TrimSpace(loc.Text())
		if u == "" || !strings.Contains(u, "/products/") {
			continue
		}

		product := shoplens.Product{URL: u}
		if img := urlEl.SelectElement("image:image"); img != nil {
			if imgLoc := img.SelectElement("image:loc"); imgLoc != nil {
				product.ImageURL = strings.TrimSpace(imgLoc.Text())
			}
			if imgTitle := img.SelectElement("image:title"); imgTitle != nil {
				product.Title = strings.TrimSpace(imgTitle.Text())
			}
		}
		if product.Title == "" {
			product.Title = titleFromHandle(u)
		}

		products = append(products, product)
	}
	return products
}

// titleFromHandle derives a readable title from a product URL handle,
// e.g. ".../products/blue-denim-jacket" -> "Blue denim jacket".
func titleFromHandle(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	handle := segments[len(segments)-1]
	if handle == "" {
		return ""
	}
	words := strings.ReplaceAll(handle, "-", " ")
	if words == "" {
		return ""
	}
	return strings.ToUpper(words[:1]) + words[1:]
}

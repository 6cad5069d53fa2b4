package scrape

import (
	"context"

	"github.com/fwojciec/shoplens"
)

// extractBrand collects "about us" prose and FAQs.
//
// FAQ pages are segmented into question/answer pairs when the markup
// cooperates; a reachable but unsegmentable FAQ page degrades to raw prose
// under About rather than erroring.
func (s *Scraper) extractBrand(ctx context.Context, baseURL string) (shoplens.BrandInfo, []string) {
	var brand shoplens.BrandInfo
	var warnings []string

	if prose, sourceURL, ok := s.fetchProse(ctx, baseURL, aboutPaths); ok {
		brand.About = prose
		brand.SourceURL = sourceURL
	}

	for _, path := range faqPaths {
		html, err := s.fetch(ctx, baseURL+path)
		if err != nil {
			continue
		}

		if faqs := s.Scanner.FAQs(html); len(faqs) > 0 {
			brand.FAQs = faqs
			if brand.SourceURL == "" {
				brand.SourceURL = baseURL + path
			}
			break
		}

		// Page exists but has no recognizable Q/A structure; keep its
		// prose if we have nothing better.
		if brand.About == "" {
			if prose, err := s.reduceProse(html); err == nil && len(prose) >= minProseLength {
				brand.About = prose
				brand.SourceURL = baseURL + path
				warnings = append(warnings, "FAQ page found but not segmentable; kept as raw text")
			}
		}
		break
	}

	if brand.About == "" && len(brand.FAQs) == 0 {
		warnings = append(warnings, "no about or FAQ page found")
	}

	return brand, warnings
}

package scrape

import (
	"context"
	"strings"

	"github.com/fwojciec/shoplens"
)

// minProseLength is the minimum extracted length for a page to count as
// found. Shorter results are usually navigation residue or placeholder
// pages.
const minProseLength = 100

// reduceProse runs the extractor chain over a fetched page and converts
// the surviving main content to Markdown. Extractors are tried in order;
// the first one yielding content wins.
func (s *Scraper) reduceProse(html string) (string, error) {
	var lastErr error
	for _, extractor := range s.Prose {
		result, err := extractor.Extract(html)
		if err != nil {
			lastErr = err
			continue
		}
		if result.ContentHTML == "" {
			continue
		}

		markdown, err := s.Converter.Convert(result.ContentHTML)
		if err != nil {
			lastErr = err
			continue
		}
		if prose := strings.TrimSpace(markdown); prose != "" {
			return prose, nil
		}
	}

	if lastErr != nil {
		return "", lastErr
	}
	return "", shoplens.Errorf(shoplens.ENOTFOUND, "no main content found")
}

// fetchProse fetches each candidate path in order and reduces the first
// reachable page with enough prose. Returns the prose and the winning URL,
// or false when no candidate produced usable content.
func (s *Scraper) fetchProse(ctx context.Context, baseURL string, paths []string) (string, string, bool) {
	for _, path := range paths {
		pageURL := baseURL + path
		html, err := s.fetch(ctx, pageURL)
		if err != nil {
			continue
		}
		prose, err := s.reduceProse(html)
		if err != nil || len(prose) < minProseLength {
			continue
		}
		return prose, pageURL, true
	}
	return "", "", false
}

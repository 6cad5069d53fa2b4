package scrape

import "github.com/fwojciec/shoplens"

// extractNavigation tries the navigation strategies in priority order and
// keeps the first non-empty menu. Finding none is not an error; it yields
// an empty menu and a warning.
func (s *Scraper) extractNavigation(homeHTML, baseURL string) ([]shoplens.NavEntry, []string) {
	for _, selector := range s.NavSelectors {
		entries, err := selector.ExtractNav(homeHTML, baseURL)
		if err != nil {
			continue
		}
		if len(entries) > 0 {
			return entries, nil
		}
	}
	return []shoplens.NavEntry{}, []string{"no navigation menu recognized"}
}

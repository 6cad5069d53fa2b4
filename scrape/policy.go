package scrape

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/shoplens"
)

// extractPolicies locates each known policy kind through its candidate
// paths and reduces the first hit to clean prose. A kind with no reachable
// candidate is omitted from the set entirely; absence is the signal of
// "not found", distinct from "found but empty".
func (s *Scraper) extractPolicies(ctx context.Context, baseURL string) (shoplens.PolicySet, []string) {
	policies := shoplens.PolicySet{}
	var warnings []string

	for _, kind := range shoplens.PolicyKinds() {
		prose, sourceURL, ok := s.fetchProse(ctx, baseURL, policyPaths[kind])
		if !ok {
			warnings = append(warnings, fmt.Sprintf("no %s policy found", kind))
			continue
		}
		policies[kind] = shoplens.Policy{
			Content:     prose,
			SourceURL:   sourceURL,
			ContentHash: fmt.Sprintf("%x", xxhash.Sum64String(prose)),
		}
	}

	if len(policies) == 0 {
		return nil, warnings
	}
	return policies, warnings
}

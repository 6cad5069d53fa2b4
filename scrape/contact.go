package scrape

import (
	"context"
	"sort"

	"github.com/fwojciec/shoplens"
)

// extractContact scans the home page for contact details and merges in
// whatever the first reachable dedicated contact page adds. No outbound
// verification of addresses or links is performed.
func (s *Scraper) extractContact(ctx context.Context, homeHTML, baseURL string) (shoplens.ContactInfo, []string) {
	contact := s.Scanner.Contact(homeHTML, baseURL)

	for _, path := range contactPaths {
		html, err := s.fetch(ctx, baseURL+path)
		if err != nil {
			continue
		}
		contact = mergeContact(contact, s.Scanner.Contact(html, baseURL))
		break
	}

	if len(contact.Emails) == 0 && len(contact.Phones) == 0 && len(contact.Socials) == 0 {
		return contact, []string{"no contact details found"}
	}
	return contact, nil
}

// mergeContact unions two contact sets, keeping results sorted and
// deduplicated.
func mergeContact(a, b shoplens.ContactInfo) shoplens.ContactInfo {
	return shoplens.ContactInfo{
		Emails:  mergeSorted(a.Emails, b.Emails),
		Phones:  mergeSorted(a.Phones, b.Phones),
		Socials: mergeSorted(a.Socials, b.Socials),
	}
}

func mergeSorted(a, b []string) []string {
	if len(b) == 0 {
		return a
	}
	seen := make(map[string]bool, len(a)+len(b))
	var out []string
	for _, v := range append(append([]string{}, a...), b...) {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

package goquery

import (
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b`)
	phoneRe = regexp.MustCompile(`\+?\d{1,3}[-.\s]?\(?\d{2,4}\)?[-.\s]?\d{3}[-.\s]?\d{3,4}`)
)

// emailExcludes filters addresses that are never a store's contact point,
// plus regex false positives from asset filenames.
var emailExcludes = []string{
	"noreply", "no-reply", "admin@", "webmaster@", "example.com",
	".png", ".jpg", ".gif", ".webp", ".css", ".js",
}

// socialHosts are the recognized social platform domains. Matching is by
// host suffix so country and www subdomains qualify.
var socialHosts = []string{
	"instagram.com",
	"facebook.com",
	"twitter.com",
	"x.com",
	"tiktok.com",
	"youtube.com",
	"pinterest.com",
	"linkedin.com",
}

// Emails extracts contact email addresses from HTML: mailto anchors first,
// then pattern matches over the page text. The result is lowercased,
// deduplicated, and sorted.
func Emails(html string) []string {
	seen := make(map[string]bool)
	var emails []string

	add := func(email string) {
		email = strings.ToLower(strings.TrimSpace(email))
		if email == "" || seen[email] || !emailRe.MatchString(email) {
			return
		}
		for _, exclude := range emailExcludes {
			if strings.Contains(email, exclude) {
				return
			}
		}
		seen[email] = true
		emails = append(emails, email)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	doc.Find("a[href^='mailto:']").Each(func(_ int, a *goquery.Selection) {
		email := strings.TrimPrefix(a.AttrOr("href", ""), "mailto:")
		if idx := strings.Index(email, "?"); idx != -1 {
			email = email[:idx]
		}
		add(email)
	})

	for _, match := range emailRe.FindAllString(doc.Text(), -1) {
		add(match)
	}

	sort.Strings(emails)
	return emails
}

// Phones extracts phone numbers from tel: anchors and page text.
func Phones(html string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	var phones []string

	add := func(phone string) {
		phone = strings.TrimSpace(phone)
		if phone == "" || seen[phone] {
			return
		}
		// Require at least 7 digits to weed out prices and dates.
		digits := 0
		for _, r := range phone {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		if digits < 7 {
			return
		}
		seen[phone] = true
		phones = append(phones, phone)
	}

	doc.Find("a[href^='tel:']").Each(func(_ int, a *goquery.Selection) {
		add(strings.TrimPrefix(a.AttrOr("href", ""), "tel:"))
	})

	for _, match := range phoneRe.FindAllString(doc.Text(), -1) {
		add(match)
	}

	sort.Strings(phones)
	return phones
}

// SocialLinks extracts social-media profile URLs from anchor hrefs,
// normalized to canonical https URLs and deduplicated. No outbound
// verification is performed.
func SocialLinks(html string, baseURL string) []string {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	var socials []string

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href := a.AttrOr("href", "")
		if href == "" || isNonHTTPLink(href) {
			return
		}

		canonical := canonicalSocialURL(resolveURL(base, href))
		if canonical == "" || seen[canonical] {
			return
		}
		seen[canonical] = true
		socials = append(socials, canonical)
	})

	sort.Strings(socials)
	return socials
}

// canonicalSocialURL normalizes a social profile link: https scheme, no
// www prefix, no query or fragment, no trailing slash. Returns "" when the
// host is not a recognized platform or the URL points at the platform root
// rather than a profile.
func canonicalSocialURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	host := strings.ToLower(strings.TrimPrefix(parsed.Host, "www."))
	matched := false
	for _, platform := range socialHosts {
		if host == platform || strings.HasSuffix(host, "."+platform) {
			matched = true
			break
		}
	}
	if !matched {
		return ""
	}

	path := strings.TrimRight(parsed.Path, "/")
	if path == "" {
		return ""
	}

	return "https://" + host + path
}

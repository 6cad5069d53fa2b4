package mock

import "github.com/fwojciec/shoplens"

var _ shoplens.Scanner = (*Scanner)(nil)

// Scanner is a mock implementation of shoplens.Scanner.
type Scanner struct {
	StoreNameFn      func(html string, baseURL string) string
	ContactFn        func(html string, baseURL string) shoplens.ContactInfo
	FAQsFn           func(html string) []shoplens.FAQ
	ImportantLinksFn func(html string, baseURL string) []shoplens.SiteLink
}

func (s *Scanner) StoreName(html string, baseURL string) string {
	if s.StoreNameFn == nil {
		return ""
	}
	return s.StoreNameFn(html, baseURL)
}

func (s *Scanner) Contact(html string, baseURL string) shoplens.ContactInfo {
	if s.ContactFn == nil {
		return shoplens.ContactInfo{}
	}
	return s.ContactFn(html, baseURL)
}

func (s *Scanner) FAQs(html string) []shoplens.FAQ {
	if s.FAQsFn == nil {
		return nil
	}
	return s.FAQsFn(html)
}

func (s *Scanner) ImportantLinks(html string, baseURL string) []shoplens.SiteLink {
	if s.ImportantLinksFn == nil {
		return nil
	}
	return s.ImportantLinksFn(html, baseURL)
}

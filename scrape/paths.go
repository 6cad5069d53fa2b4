package scrape

import "github.com/fwojciec/shoplens"

// Candidate paths are conventional URL suffixes tried in order; the first
// one that returns usable content wins. The lists combine Shopify's
// canonical /policies/ routes with the /pages/ and bare slugs merchants
// set up by hand.

var policyPaths = map[shoplens.PolicyKind][]string{
	shoplens.PolicyPrivacy: {
		"/policies/privacy-policy",
		"/pages/privacy-policy",
		"/privacy-policy",
		"/privacy",
	},
	shoplens.PolicyReturns: {
		"/policies/refund-policy",
		"/pages/refund-policy",
		"/pages/returns",
		"/returns",
		"/refunds",
		"/shipping-returns",
	},
	shoplens.PolicyShipping: {
		"/policies/shipping-policy",
		"/pages/shipping-policy",
		"/pages/shipping",
		"/shipping",
	},
	shoplens.PolicyTerms: {
		"/policies/terms-of-service",
		"/pages/terms-of-service",
		"/pages/terms",
		"/terms",
	},
}

var aboutPaths = []string{
	"/pages/about",
	"/pages/about-us",
	"/about",
	"/about-us",
	"/pages/our-story",
	"/our-story",
}

var faqPaths = []string{
	"/pages/faq",
	"/pages/faqs",
	"/faq",
	"/faqs",
	"/pages/help",
	"/help",
	"/support",
}

var contactPaths = []string{
	"/pages/contact",
	"/pages/contact-us",
	"/contact",
	"/contact-us",
}

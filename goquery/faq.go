package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/shoplens"
)

// faqRegionSelectors identify sections that themes use for FAQ content.
var faqRegionSelectors = []string{
	"[class*='faq']",
	"[class*='question']",
	"[class*='accordion']",
	"details",
}

// SegmentFAQs splits an FAQ-style page into question/answer pairs.
//
// It relies on the common heading/paragraph alternation: a heading (or dt,
// or details/summary) containing a question mark, followed by a sibling
// block holding the answer. Returns nil when the page exposes no
// recognizable structure; callers degrade to keeping the page as raw prose.
func SegmentFAQs(html string) []shoplens.FAQ {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	var faqs []shoplens.FAQ

	add := func(question, answer string) {
		question = strings.Join(strings.Fields(question), " ")
		answer = strings.Join(strings.Fields(answer), " ")
		if question == "" || answer == "" || !strings.Contains(question, "?") {
			return
		}
		if seen[question] {
			return
		}
		seen[question] = true
		faqs = append(faqs, shoplens.FAQ{Question: question, Answer: answer})
	}

	for _, region := range faqRegionSelectors {
		doc.Find(region).Each(func(_ int, section *goquery.Selection) {
			// details/summary pairs carry the answer as the summary's siblings
			section.Find("summary").Each(func(_ int, summary *goquery.Selection) {
				answer := summary.Parent().Clone()
				answer.Find("summary").Remove()
				add(summary.Text(), answer.Text())
			})

			section.Find("h1, h2, h3, h4, h5, h6, dt").Each(func(_ int, q *goquery.Selection) {
				answer := q.NextFiltered("p, div, dd").First()
				add(q.Text(), answer.Text())
			})
		})
		if len(faqs) > 0 {
			return faqs
		}
	}

	// No marked-up FAQ region; fall back to question-shaped headings
	// anywhere on the page.
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, q *goquery.Selection) {
		if !strings.Contains(q.Text(), "?") {
			return
		}
		answer := q.NextFiltered("p, div, dd").First()
		add(q.Text(), answer.Text())
	})

	return faqs
}

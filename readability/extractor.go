// Package readability provides a fallback shoplens.ProseExtractor used
// when trafilatura finds no content node.
package readability

import (
	"strings"

	"github.com/fwojciec/shoplens"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements shoplens.ProseExtractor at compile time.
var _ shoplens.ProseExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*shoplens.ProseResult, error) {
	if rawHTML == "" {
		return nil, shoplens.Errorf(shoplens.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &shoplens.ProseResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}

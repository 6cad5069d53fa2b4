package mock

import "github.com/fwojciec/shoplens"

var _ shoplens.ProseExtractor = (*ProseExtractor)(nil)

// ProseExtractor is a mock implementation of shoplens.ProseExtractor.
type ProseExtractor struct {
	ExtractFn func(html string) (*shoplens.ProseResult, error)
}

func (e *ProseExtractor) Extract(html string) (*shoplens.ProseResult, error) {
	return e.ExtractFn(html)
}

var _ shoplens.Converter = (*Converter)(nil)

// Converter is a mock implementation of shoplens.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

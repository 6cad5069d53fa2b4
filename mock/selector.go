package mock

import (
	"context"

	"github.com/fwojciec/shoplens"
)

var _ shoplens.NavSelector = (*NavSelector)(nil)

// NavSelector is a mock implementation of shoplens.NavSelector.
type NavSelector struct {
	NameFn       func() string
	ExtractNavFn func(html string, baseURL string) ([]shoplens.NavEntry, error)
}

func (s *NavSelector) Name() string {
	if s.NameFn == nil {
		return "mock"
	}
	return s.NameFn()
}

func (s *NavSelector) ExtractNav(html string, baseURL string) ([]shoplens.NavEntry, error) {
	return s.ExtractNavFn(html, baseURL)
}

var _ shoplens.CardSelector = (*CardSelector)(nil)

// CardSelector is a mock implementation of shoplens.CardSelector.
type CardSelector struct {
	NameFn            func() string
	ExtractProductsFn func(html string, baseURL string) ([]shoplens.Product, error)
}

func (s *CardSelector) Name() string {
	if s.NameFn == nil {
		return "mock"
	}
	return s.NameFn()
}

func (s *CardSelector) ExtractProducts(html string, baseURL string) ([]shoplens.Product, error) {
	return s.ExtractProductsFn(html, baseURL)
}

var _ shoplens.ProductSource = (*ProductSource)(nil)

// ProductSource is a mock implementation of shoplens.ProductSource.
type ProductSource struct {
	DiscoverProductsFn func(ctx context.Context, baseURL string) ([]shoplens.Product, error)
}

func (s *ProductSource) DiscoverProducts(ctx context.Context, baseURL string) ([]shoplens.Product, error) {
	return s.DiscoverProductsFn(ctx, baseURL)
}

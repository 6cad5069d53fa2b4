package mock

import (
	"context"

	"github.com/fwojciec/shoplens"
)

var _ shoplens.InsightService = (*InsightService)(nil)

// InsightService is a mock implementation of shoplens.InsightService.
type InsightService struct {
	BuildInsightFn func(ctx context.Context, rawURL string) (*shoplens.Insight, error)
}

func (s *InsightService) BuildInsight(ctx context.Context, rawURL string) (*shoplens.Insight, error) {
	return s.BuildInsightFn(ctx, rawURL)
}

package app

import (
	"context"
	"fmt"

	"github.com/bobmcallan/finnhub-mcp/internal/common"
	"github.com/bobmcallan/finnhub-mcp/internal/models"
)

// mockFinnhubClient records calls and delegates to optional fn fields.
type mockFinnhubClient struct {
	quoteFn      func(ctx context.Context, symbol string) (*models.Quote, error)
	newsFn       func(ctx context.Context, category string) ([]models.NewsArticle, error)
	financialsFn func(ctx context.Context, symbol, metric string) (*models.BasicFinancials, error)
	trendsFn     func(ctx context.Context, symbol string) ([]models.RecommendationTrend, error)

	calls int
}

func (m *mockFinnhubClient) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	m.calls++
	if m.quoteFn != nil {
		return m.quoteFn(ctx, symbol)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockFinnhubClient) GetMarketNews(ctx context.Context, category string) ([]models.NewsArticle, error) {
	m.calls++
	if m.newsFn != nil {
		return m.newsFn(ctx, category)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockFinnhubClient) GetBasicFinancials(ctx context.Context, symbol, metric string) (*models.BasicFinancials, error) {
	m.calls++
	if m.financialsFn != nil {
		return m.financialsFn(ctx, symbol, metric)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockFinnhubClient) GetRecommendationTrends(ctx context.Context, symbol string) ([]models.RecommendationTrend, error) {
	m.calls++
	if m.trendsFn != nil {
		return m.trendsFn(ctx, symbol)
	}
	return nil, fmt.Errorf("not implemented")
}

func testLogger() *common.Logger {
	return common.NewSilentLogger()
}

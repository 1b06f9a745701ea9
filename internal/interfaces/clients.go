// Package interfaces defines service contracts for dependency injection.
package interfaces

import (
	"context"

	"github.com/bobmcallan/finnhub-mcp/internal/models"
)

// FinnhubClient provides access to the Finnhub API
type FinnhubClient interface {
	// GetQuote retrieves a real-time quote for a symbol
	GetQuote(ctx context.Context, symbol string) (*models.Quote, error)

	// GetMarketNews retrieves latest market news for a category
	GetMarketNews(ctx context.Context, category string) ([]models.NewsArticle, error)

	// GetBasicFinancials retrieves company financial metrics
	GetBasicFinancials(ctx context.Context, symbol, metric string) (*models.BasicFinancials, error)

	// GetRecommendationTrends retrieves analyst recommendation trends
	GetRecommendationTrends(ctx context.Context, symbol string) ([]models.RecommendationTrend, error)
}

package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/finnhub-mcp/internal/common"
	"github.com/bobmcallan/finnhub-mcp/internal/interfaces"
)

// handleGetVersion implements the get_version tool
func handleGetVersion() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := fmt.Sprintf("Finnhub MCP Server\nVersion: %s\nBuild: %s\nCommit: %s\nStatus: OK",
			common.GetVersion(), common.GetBuild(), common.GetGitCommit())
		return textResult(result), nil
	}
}

// handleListNews implements the list_news tool
func handleListNews(client interfaces.FinnhubClient, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		category := request.GetString("category", "general")
		if !validNewsCategories[category] {
			return errorResult(fmt.Sprintf("Error: invalid category '%s'. Must be one of: general, forex, crypto, merger", category)), nil
		}

		count := request.GetInt("count", 10)
		if count < 1 || count > 100 {
			return errorResult("Error: count must be between 1 and 100"), nil
		}

		days := request.GetInt("days", 0)
		if days < 0 {
			return errorResult("Error: days must be a positive integer"), nil
		}

		news, err := client.GetMarketNews(ctx, category)
		if err != nil {
			logger.Error().Err(err).Str("category", category).Msg("List news failed")
			return errorResult(fmt.Sprintf("Error fetching news: %v", err)), nil
		}

		if days > 0 {
			cutoff := time.Now().AddDate(0, 0, -days).Unix()
			filtered := news[:0]
			for _, a := range news {
				if a.Datetime > cutoff {
					filtered = append(filtered, a)
				}
			}
			news = filtered
		}

		if len(news) > count {
			news = news[:count]
		}

		return textResult(toJSON(formatNews(news))), nil
	}
}

// handleGetMarketData implements the get_market_data tool
func handleGetMarketData(client interfaces.FinnhubClient, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw, err := request.RequireString("symbol")
		if err != nil {
			return errorResult("Error: symbol parameter is required"), nil
		}
		symbol, err := normalizeSymbol(raw)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		quote, err := client.GetQuote(ctx, symbol)
		if err != nil {
			logger.Error().Err(err).Str("symbol", symbol).Msg("Get market data failed")
			return errorResult(fmt.Sprintf("Error fetching quote: %v", err)), nil
		}

		return textResult(toJSON(quote)), nil
	}
}

// handleGetBasicFinancials implements the get_basic_financials tool
func handleGetBasicFinancials(client interfaces.FinnhubClient, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw, err := request.RequireString("symbol")
		if err != nil {
			return errorResult("Error: symbol parameter is required"), nil
		}
		symbol, err := normalizeSymbol(raw)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		metric := strings.ToLower(request.GetString("metric", "all"))
		if !validFinancialMetrics[metric] {
			return errorResult(fmt.Sprintf("Error: invalid metric '%s'. Must be one of: all, price, valuation, margin", metric)), nil
		}

		financials, err := client.GetBasicFinancials(ctx, symbol, metric)
		if err != nil {
			logger.Error().Err(err).Str("symbol", symbol).Msg("Get basic financials failed")
			return errorResult(fmt.Sprintf("Error fetching financials: %v", err)), nil
		}

		return textResult(toJSON(financials)), nil
	}
}

// handleGetRecommendationTrends implements the get_recommendation_trends tool
func handleGetRecommendationTrends(client interfaces.FinnhubClient, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw, err := request.RequireString("symbol")
		if err != nil {
			return errorResult("Error: symbol parameter is required"), nil
		}
		symbol, err := normalizeSymbol(raw)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		trends, err := client.GetRecommendationTrends(ctx, symbol)
		if err != nil {
			logger.Error().Err(err).Str("symbol", symbol).Msg("Get recommendation trends failed")
			return errorResult(fmt.Sprintf("Error fetching recommendation trends: %v", err)), nil
		}

		return textResult(toJSON(trends)), nil
	}
}

// Helper functions

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

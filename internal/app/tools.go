package app

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createGetVersionTool returns the get_version tool definition
func createGetVersionTool() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get the Finnhub MCP server version and status. Use this to verify connectivity."),
	)
}

// createListNewsTool returns the list_news tool definition
func createListNewsTool() mcp.Tool {
	return mcp.NewTool("list_news",
		mcp.WithDescription("Fetch latest financial market news from Finnhub. Returns articles with headline, source, summary, url, and publication date."),
		mcp.WithString("category",
			mcp.Description("News category: 'general', 'forex', 'crypto', or 'merger' (default: 'general')"),
		),
		mcp.WithNumber("count",
			mcp.Description("Maximum number of articles to return, 1-100 (default: 10)"),
		),
		mcp.WithNumber("days",
			mcp.Description("Only return news published in the past N days"),
		),
	)
}

// createGetMarketDataTool returns the get_market_data tool definition
func createGetMarketDataTool() mcp.Tool {
	return mcp.NewTool("get_market_data",
		mcp.WithDescription("Get a real-time market quote for a stock. Returns current price (c), change (d), percent change (dp), high (h), low (l), open (o), and previous close (pc)."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock ticker symbol (e.g. 'AAPL', 'GOOGL', 'MSFT')"),
		),
	)
}

// createGetBasicFinancialsTool returns the get_basic_financials tool definition
func createGetBasicFinancialsTool() mcp.Tool {
	return mcp.NewTool("get_basic_financials",
		mcp.WithDescription("Get company financial metrics: 52-week range, beta, market cap, P/E, EPS, dividend yield, margins, and other fundamentals."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock ticker symbol (e.g. 'AAPL', 'GOOGL', 'MSFT')"),
		),
		mcp.WithString("metric",
			mcp.Description("Metric group: 'all', 'price', 'valuation', or 'margin' (default: 'all')"),
		),
	)
}

// createGetRecommendationTrendsTool returns the get_recommendation_trends tool definition
func createGetRecommendationTrendsTool() mcp.Tool {
	return mcp.NewTool("get_recommendation_trends",
		mcp.WithDescription("Get monthly analyst recommendation trends for a stock: strongBuy, buy, hold, sell, and strongSell counts per period. Useful for gauging analyst consensus."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock ticker symbol (e.g. 'AAPL', 'GOOGL', 'MSFT')"),
		),
	)
}

// Package app wires configuration, the Finnhub client, and the MCP server.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/finnhub-mcp/internal/clients/finnhub"
	"github.com/bobmcallan/finnhub-mcp/internal/common"
	"github.com/bobmcallan/finnhub-mcp/internal/interfaces"
)

// App holds the initialized client, config, and MCP server.
// It is the shared core used by the stdio and HTTP entry points.
type App struct {
	Config      *common.Config
	Logger      *common.Logger
	Finnhub     interfaces.FinnhubClient
	MCPServer   *server.MCPServer
	StartupTime time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes configuration, the Finnhub client, and the MCP server.
// configPath may be empty, in which case the default resolution logic is used.
// A missing API key is a fatal configuration error: no tools are registered.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	if configPath == "" {
		configPath = os.Getenv("FINNHUB_MCP_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(getBinaryDir(), "finnhub-mcp.toml")
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLogger(config.Logging.Level)

	apiKey, err := common.ResolveAPIKey(config.Finnhub.APIKey)
	if err != nil {
		return nil, err
	}

	client := finnhub.NewClient(apiKey,
		finnhub.WithBaseURL(config.Finnhub.BaseURL),
		finnhub.WithLogger(logger),
		finnhub.WithRateLimit(config.Finnhub.RateLimit),
		finnhub.WithTimeout(config.Finnhub.GetTimeout()),
		finnhub.WithMaxRetries(config.Finnhub.MaxRetries),
	)

	mcpServer := server.NewMCPServer(
		"finnhub-mcp",
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	registerTools(mcpServer, client, logger)

	logger.Info().Dur("startup", time.Since(startupStart)).Msg("App initialized")

	return &App{
		Config:      config,
		Logger:      logger,
		Finnhub:     client,
		MCPServer:   mcpServer,
		StartupTime: startupStart,
	}, nil
}

// registerTools registers the static tool table. Built once at startup and
// never mutated afterwards.
func registerTools(s *server.MCPServer, client interfaces.FinnhubClient, logger *common.Logger) {
	s.AddTool(createGetVersionTool(), handleGetVersion())
	s.AddTool(createListNewsTool(), handleListNews(client, logger))
	s.AddTool(createGetMarketDataTool(), handleGetMarketData(client, logger))
	s.AddTool(createGetBasicFinancialsTool(), handleGetBasicFinancials(client, logger))
	s.AddTool(createGetRecommendationTrendsTool(), handleGetRecommendationTrends(client, logger))
}

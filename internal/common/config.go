package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for the Finnhub MCP server
type Config struct {
	Environment string        `toml:"environment"`
	Server      ServerConfig  `toml:"server"`
	Finnhub     FinnhubConfig `toml:"finnhub"`
	Logging     LoggingConfig `toml:"logging"`
}

// ServerConfig holds HTTP server configuration (used only in --http mode)
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// FinnhubConfig holds Finnhub API configuration
type FinnhubConfig struct {
	BaseURL    string `toml:"base_url"`
	APIKey     string `toml:"api_key"`
	RateLimit  int    `toml:"rate_limit"` // requests per second
	Timeout    string `toml:"timeout"`
	MaxRetries int    `toml:"max_retries"` // retries on 429 responses
}

// GetTimeout parses and returns the timeout duration
func (c *FinnhubConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `toml:"level"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 4270,
		},
		Finnhub: FinnhubConfig{
			BaseURL:    "https://finnhub.io/api/v1",
			RateLimit:  1,
			Timeout:    "30s",
			MaxRetries: 3,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// Missing files are skipped; later files override earlier ones.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("FINNHUB_MCP_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("FINNHUB_MCP_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("FINNHUB_MCP_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("FINNHUB_MCP_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if base := os.Getenv("FINNHUB_MCP_BASE_URL"); base != "" {
		config.Finnhub.BaseURL = base
	}
}

// ResolveAPIKey resolves the Finnhub API key from environment or config
// fallback. Environment variables take priority.
func ResolveAPIKey(fallback string) (string, error) {
	for _, name := range []string{"FINNHUB_API_KEY", "FINNHUB_MCP_API_KEY"} {
		if v := os.Getenv(name); v != "" {
			return v, nil
		}
	}

	if fallback != "" {
		return fallback, nil
	}

	return "", fmt.Errorf("FINNHUB_API_KEY is not set in environment or config")
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}

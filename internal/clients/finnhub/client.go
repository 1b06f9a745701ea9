// Package finnhub provides a client for the Finnhub API
package finnhub

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/bobmcallan/finnhub-mcp/internal/common"
	"github.com/bobmcallan/finnhub-mcp/internal/interfaces"
	"github.com/bobmcallan/finnhub-mcp/internal/models"
)

const (
	DefaultBaseURL   = "https://finnhub.io/api/v1"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 1 // requests per second; free tier allows 60/min

	// DefaultMaxRetries bounds retries after a 429 response. Waits grow
	// linearly: backoff, 2*backoff, 3*backoff.
	DefaultMaxRetries   = 3
	DefaultRetryBackoff = 5 * time.Second
)

// Client implements the FinnhubClient interface
type Client struct {
	baseURL      string
	apiKey       string
	httpClient   *http.Client
	logger       *common.Logger
	limiter      *rate.Limiter
	maxRetries   int
	retryBackoff time.Duration
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithMaxRetries sets the number of retries after a 429 response
func WithMaxRetries(n int) ClientOption {
	return func(c *Client) {
		c.maxRetries = n
	}
}

// WithRetryBackoff sets the base wait between 429 retries
func WithRetryBackoff(d time.Duration) ClientOption {
	return func(c *Client) {
		c.retryBackoff = d
	}
}

// NewClient creates a new Finnhub client
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter:      rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		maxRetries:   DefaultMaxRetries,
		retryBackoff: DefaultRetryBackoff,
		logger:       common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError represents an API error
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Finnhub API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// get performs a rate-limited GET request, retrying on 429 responses
func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("token", c.apiKey)

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	for attempt := 0; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit wait: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}

		c.logger.Debug().Str("url", c.baseURL+path).Int("attempt", attempt).Msg("Finnhub API request")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("failed to execute request: %w", err)
		}

		if resp.StatusCode == http.StatusTooManyRequests && attempt < c.maxRetries {
			resp.Body.Close()
			wait := c.retryBackoff * time.Duration(attempt+1)
			c.logger.Warn().
				Dur("wait", wait).
				Int("attempt", attempt+1).
				Int("max_retries", c.maxRetries).
				Msg("Rate limited by Finnhub, backing off")
			if err := sleepContext(ctx, wait); err != nil {
				return err
			}
			continue
		}

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			return &APIError{
				StatusCode: resp.StatusCode,
				Message:    string(body),
				Endpoint:   path,
			}
		}

		err = json.NewDecoder(resp.Body).Decode(result)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}

		return nil
	}
}

// sleepContext waits for d or until ctx is cancelled
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// GetQuote retrieves a real-time quote for a symbol
func (c *Client) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	params := url.Values{}
	params.Set("symbol", symbol)

	var quote models.Quote
	if err := c.get(ctx, "/quote", params, &quote); err != nil {
		return nil, err
	}

	return &quote, nil
}

// GetMarketNews retrieves latest market news for a category
func (c *Client) GetMarketNews(ctx context.Context, category string) ([]models.NewsArticle, error) {
	params := url.Values{}
	params.Set("category", category)
	params.Set("minId", "0")

	var news []models.NewsArticle
	if err := c.get(ctx, "/news", params, &news); err != nil {
		return nil, err
	}

	return news, nil
}

// GetBasicFinancials retrieves company financial metrics
func (c *Client) GetBasicFinancials(ctx context.Context, symbol, metric string) (*models.BasicFinancials, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("metric", metric)

	var financials models.BasicFinancials
	if err := c.get(ctx, "/stock/metric", params, &financials); err != nil {
		return nil, err
	}

	return &financials, nil
}

// GetRecommendationTrends retrieves analyst recommendation trends
func (c *Client) GetRecommendationTrends(ctx context.Context, symbol string) ([]models.RecommendationTrend, error) {
	params := url.Values{}
	params.Set("symbol", symbol)

	var trends []models.RecommendationTrend
	if err := c.get(ctx, "/stock/recommendation", params, &trends); err != nil {
		return nil, err
	}

	return trends, nil
}

// Ensure Client implements FinnhubClient
var _ interfaces.FinnhubClient = (*Client)(nil)

package finnhub

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetQuote_ParsesResponse(t *testing.T) {
	mockResp := map[string]interface{}{
		"c":  150.1,
		"d":  0.6,
		"dp": 0.4,
		"h":  151.0,
		"l":  149.0,
		"o":  150.0,
		"pc": 149.5,
		"t":  int64(1711670340),
	}

	var capturedPath, capturedToken, capturedSymbol string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		capturedToken = r.URL.Query().Get("token")
		capturedSymbol = r.URL.Query().Get("symbol")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(mockResp)
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	quote, err := client.GetQuote(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("GetQuote failed: %v", err)
	}

	if capturedPath != "/quote" {
		t.Errorf("expected path /quote, got %s", capturedPath)
	}
	if capturedToken != "test-key" {
		t.Errorf("expected token test-key, got %s", capturedToken)
	}
	if capturedSymbol != "AAPL" {
		t.Errorf("expected symbol AAPL, got %s", capturedSymbol)
	}
	if quote.Current != 150.1 {
		t.Errorf("expected current 150.1, got %.2f", quote.Current)
	}
	if quote.High != 151.0 {
		t.Errorf("expected high 151.0, got %.2f", quote.High)
	}
	if quote.Low != 149.0 {
		t.Errorf("expected low 149.0, got %.2f", quote.Low)
	}
	if quote.Open != 150.0 {
		t.Errorf("expected open 150.0, got %.2f", quote.Open)
	}
	if quote.PreviousClose != 149.5 {
		t.Errorf("expected previous close 149.5, got %.2f", quote.PreviousClose)
	}
}

func TestGetQuote_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid API key"}`))
	}))
	defer srv.Close()

	client := NewClient("bad-key", WithBaseURL(srv.URL))
	_, err := client.GetQuote(context.Background(), "AAPL")
	if err == nil {
		t.Fatal("expected error for 401 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", apiErr.StatusCode)
	}
	if apiErr.Endpoint != "/quote" {
		t.Errorf("expected endpoint /quote, got %s", apiErr.Endpoint)
	}
}

func TestGetMarketNews_ParsesResponse(t *testing.T) {
	mockResp := []map[string]interface{}{
		{
			"category": "general",
			"datetime": int64(1711670000),
			"headline": "Fed holds rates steady",
			"id":       int64(101),
			"source":   "Reuters",
			"summary":  "The Federal Reserve kept rates unchanged.",
			"url":      "https://example.com/fed",
		},
		{
			"category": "general",
			"datetime": int64(1711660000),
			"headline": "Tech stocks rally",
			"id":       int64(102),
			"source":   "Bloomberg",
			"summary":  "Large caps led the gains.",
			"url":      "https://example.com/tech",
		},
	}

	var capturedCategory string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/news" {
			t.Errorf("expected path /news, got %s", r.URL.Path)
		}
		capturedCategory = r.URL.Query().Get("category")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(mockResp)
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	news, err := client.GetMarketNews(context.Background(), "general")
	if err != nil {
		t.Fatalf("GetMarketNews failed: %v", err)
	}

	if capturedCategory != "general" {
		t.Errorf("expected category general, got %s", capturedCategory)
	}
	if len(news) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(news))
	}
	if news[0].Headline != "Fed holds rates steady" {
		t.Errorf("expected first headline preserved, got %s", news[0].Headline)
	}
	if news[1].Source != "Bloomberg" {
		t.Errorf("expected second source Bloomberg, got %s", news[1].Source)
	}
}

func TestGetBasicFinancials_ParsesResponse(t *testing.T) {
	mockResp := map[string]interface{}{
		"symbol":     "AAPL",
		"metricType": "all",
		"metric": map[string]interface{}{
			"52WeekHigh":          199.62,
			"52WeekLow":           124.17,
			"beta":                1.28,
			"peBasicExclExtraTTM": 28.5,
		},
	}

	var capturedMetric string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stock/metric" {
			t.Errorf("expected path /stock/metric, got %s", r.URL.Path)
		}
		capturedMetric = r.URL.Query().Get("metric")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(mockResp)
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	financials, err := client.GetBasicFinancials(context.Background(), "AAPL", "all")
	if err != nil {
		t.Fatalf("GetBasicFinancials failed: %v", err)
	}

	if capturedMetric != "all" {
		t.Errorf("expected metric all, got %s", capturedMetric)
	}
	if financials.Symbol != "AAPL" {
		t.Errorf("expected symbol AAPL, got %s", financials.Symbol)
	}
	if financials.Metric["beta"] != 1.28 {
		t.Errorf("expected beta 1.28, got %v", financials.Metric["beta"])
	}
	if len(financials.Metric) != 4 {
		t.Errorf("expected 4 metrics passed through, got %d", len(financials.Metric))
	}
}

func TestGetRecommendationTrends_ParsesResponse(t *testing.T) {
	mockResp := []map[string]interface{}{
		{"symbol": "AAPL", "period": "2026-08-01", "strongBuy": 18, "buy": 20, "hold": 8, "sell": 1, "strongSell": 0},
		{"symbol": "AAPL", "period": "2026-07-01", "strongBuy": 17, "buy": 21, "hold": 9, "sell": 2, "strongSell": 1},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stock/recommendation" {
			t.Errorf("expected path /stock/recommendation, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(mockResp)
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	trends, err := client.GetRecommendationTrends(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("GetRecommendationTrends failed: %v", err)
	}

	if len(trends) != 2 {
		t.Fatalf("expected 2 periods, got %d", len(trends))
	}
	if trends[0].Period != "2026-08-01" {
		t.Errorf("expected first period 2026-08-01, got %s", trends[0].Period)
	}
	if trends[0].StrongBuy != 18 {
		t.Errorf("expected strongBuy 18, got %d", trends[0].StrongBuy)
	}
	if trends[1].Hold != 9 {
		t.Errorf("expected hold 9, got %d", trends[1].Hold)
	}
}

func TestGet_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"c": not-json`))
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	_, err := client.GetQuote(context.Background(), "AAPL")
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Errorf("malformed JSON should not be an APIError, got %v", apiErr)
	}
}

func TestGet_RetriesOn429(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"c": 42.0})
	}))
	defer srv.Close()

	client := NewClient("test-key",
		WithBaseURL(srv.URL),
		WithRateLimit(100),
		WithRetryBackoff(10*time.Millisecond),
	)

	quote, err := client.GetQuote(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("expected success after retry, got %v", err)
	}
	if requests != 2 {
		t.Errorf("expected 2 requests, got %d", requests)
	}
	if quote.Current != 42.0 {
		t.Errorf("expected current 42.0, got %.2f", quote.Current)
	}
}

func TestGet_429RetriesExhausted(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient("test-key",
		WithBaseURL(srv.URL),
		WithRateLimit(100),
		WithMaxRetries(2),
		WithRetryBackoff(time.Millisecond),
	)

	_, err := client.GetQuote(context.Background(), "AAPL")
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("expected status 429, got %d", apiErr.StatusCode)
	}
	if requests != 3 {
		t.Errorf("expected 3 requests (initial + 2 retries), got %d", requests)
	}
}

func TestGet_ContextCancelledDuringBackoff(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient("test-key",
		WithBaseURL(srv.URL),
		WithRateLimit(100),
		WithRetryBackoff(10*time.Second),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := client.GetQuote(ctx, "AAPL")
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("backoff did not honor context cancellation, took %v", elapsed)
	}
}

// Package models defines the data structures exchanged with the Finnhub API.
package models

// Quote is a real-time quote from /quote. Field names mirror the upstream
// payload so the tool result carries the same keys the API documents.
type Quote struct {
	Current       float64 `json:"c"`
	Change        float64 `json:"d"`
	ChangePct     float64 `json:"dp"`
	High          float64 `json:"h"`
	Low           float64 `json:"l"`
	Open          float64 `json:"o"`
	PreviousClose float64 `json:"pc"`
	Timestamp     int64   `json:"t"`
}

// NewsArticle is a single market news item from /news.
type NewsArticle struct {
	Category string `json:"category"`
	Datetime int64  `json:"datetime"` // unix seconds
	Headline string `json:"headline"`
	ID       int64  `json:"id"`
	Image    string `json:"image"`
	Related  string `json:"related"`
	Source   string `json:"source"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
}

// BasicFinancials is the /stock/metric response. The metric map is
// provider-controlled and changes without notice, so it stays untyped.
type BasicFinancials struct {
	Symbol     string                 `json:"symbol"`
	MetricType string                 `json:"metricType"`
	Metric     map[string]interface{} `json:"metric"`
	Series     map[string]interface{} `json:"series,omitempty"`
}

// RecommendationTrend is one period bucket of analyst ratings from
// /stock/recommendation.
type RecommendationTrend struct {
	Symbol     string `json:"symbol"`
	Period     string `json:"period"`
	StrongBuy  int    `json:"strongBuy"`
	Buy        int    `json:"buy"`
	Hold       int    `json:"hold"`
	Sell       int    `json:"sell"`
	StrongSell int    `json:"strongSell"`
}

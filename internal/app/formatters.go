package app

import (
	"encoding/json"
	"time"

	"github.com/bobmcallan/finnhub-mcp/internal/models"
)

// newsDigest is the reshaped news article returned by list_news: the unix
// timestamp becomes a date string, image/id noise is dropped.
type newsDigest struct {
	Headline string `json:"headline"`
	Source   string `json:"source"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
	Date     string `json:"date"`
}

// formatNews reshapes upstream news articles, preserving order
func formatNews(articles []models.NewsArticle) []newsDigest {
	digests := make([]newsDigest, len(articles))
	for i, a := range articles {
		digests[i] = newsDigest{
			Headline: a.Headline,
			Source:   a.Source,
			Summary:  a.Summary,
			URL:      a.URL,
			Date:     time.Unix(a.Datetime, 0).UTC().Format("2006-01-02"),
		}
	}
	return digests
}

// toJSON renders a tool payload as indented JSON
func toJSON(v interface{}) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}

// Command finnhub-news fetches today's general market news and writes it
// to a date-stamped JSON file. Intended to run from cron.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bobmcallan/finnhub-mcp/internal/clients/finnhub"
	"github.com/bobmcallan/finnhub-mcp/internal/common"
)

const topArticles = 30

type newsRecord struct {
	Category string `json:"category"`
	Datetime string `json:"datetime"` // YYYYMMDD
	Headline string `json:"headline"`
	Source   string `json:"source"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
}

func main() {
	var (
		outDir   = flag.String("out", ".", "output directory for the news file")
		category = flag.String("category", "general", "news category to fetch")
	)
	flag.Parse()

	logger := common.NewLogger("info")

	apiKey, err := common.ResolveAPIKey("")
	if err != nil {
		logger.Error().Err(err).Msg("API key not configured")
		os.Exit(1)
	}

	client := finnhub.NewClient(apiKey, finnhub.WithLogger(logger))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	logger.Info().Str("category", *category).Msg("Fetching news")
	articles, err := client.GetMarketNews(ctx, *category)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to fetch news")
		os.Exit(1)
	}

	if len(articles) > topArticles {
		articles = articles[:topArticles]
	}

	// Keep only articles published today (UTC)
	now := time.Now().UTC()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Unix()

	records := make([]newsRecord, 0, len(articles))
	for _, a := range articles {
		if a.Datetime < startOfToday {
			continue
		}
		records = append(records, newsRecord{
			Category: a.Category,
			Datetime: time.Unix(a.Datetime, 0).UTC().Format("20060102"),
			Headline: a.Headline,
			Source:   a.Source,
			Summary:  a.Summary,
			URL:      a.URL,
		})
	}

	logger.Info().Int("kept", len(records)).Int("fetched", len(articles)).Msg("Processed news items")

	outFile := filepath.Join(*outDir, fmt.Sprintf("news_output_%s.json", now.Format("20060102")))
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		logger.Error().Err(err).Msg("Failed to encode output")
		os.Exit(1)
	}
	if err := os.WriteFile(outFile, data, 0o644); err != nil {
		logger.Error().Err(err).Msg("Failed to save output")
		os.Exit(1)
	}

	logger.Info().Str("file", outFile).Msg("Saved news")
}

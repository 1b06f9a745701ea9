package common

import (
	"fmt"
	"os"
	"strings"

	"github.com/ternarybob/banner"
)

// PrintBanner displays the application startup banner to stderr.
func PrintBanner(config *Config, logger *Logger) {
	version := GetVersion()
	build := GetBuild()

	lineColor := banner.ColorCyan
	textColor := banner.ColorBold + banner.ColorWhite
	width := 78
	hr := lineColor + strings.Repeat("═", width) + banner.ColorReset

	art := []string{
		` 8888888888 8888888 888b    888 888b    888 888    888 888     888 888888b.`,
		` 888          888   8888b   888 8888b   888 888    888 888     888 888  "88b`,
		` 888          888   88888b  888 88888b  888 888    888 888     888 888  .88P`,
		` 8888888      888   888Y88b 888 888Y88b 888 8888888888 888     888 8888888K.`,
		` 888          888   888 Y88b888 888 Y88b888 888    888 888     888 888  "Y88b`,
		` 888          888   888  Y88888 888  Y88888 888    888 888     888 888    888`,
		` 888          888   888   Y8888 888   Y8888 888    888 Y88b. .d88P 888   d88P`,
		` 888        8888888 888    Y888 888    Y888 888    888  "Y88888P"  8888888P"`,
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "%s\n", hr)
	fmt.Fprintf(os.Stderr, "\n")
	for _, line := range art {
		fmt.Fprintf(os.Stderr, "%s%s%s\n", textColor, line, banner.ColorReset)
	}
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "%s  Finnhub Market Data over MCP%s\n", textColor, banner.ColorReset)
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Version:     %s\n", version)
	fmt.Fprintf(os.Stderr, "  Build:       %s\n", build)
	fmt.Fprintf(os.Stderr, "  Environment: %s\n", config.Environment)
	fmt.Fprintf(os.Stderr, "  Upstream:    %s\n", config.Finnhub.BaseURL)
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "%s\n", hr)
	fmt.Fprintf(os.Stderr, "\n")
}

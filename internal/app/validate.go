package app

import (
	"fmt"
	"strings"
)

const maxSymbolLen = 10

// normalizeSymbol validates and normalizes a stock ticker symbol.
// Symbols are trimmed and uppercased; letters, digits, '.' and '-' are
// allowed (e.g. "BRK.B", "RIO-L").
func normalizeSymbol(raw string) (string, error) {
	symbol := strings.ToUpper(strings.TrimSpace(raw))
	if symbol == "" {
		return "", fmt.Errorf("stock symbol is required and cannot be empty")
	}
	if len(symbol) > maxSymbolLen {
		return "", fmt.Errorf("stock symbol too long: %s", raw)
	}
	for _, r := range symbol {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '.' || r == '-':
		default:
			return "", fmt.Errorf("invalid stock symbol format: %s", raw)
		}
	}
	return symbol, nil
}

var validNewsCategories = map[string]bool{
	"general": true,
	"forex":   true,
	"crypto":  true,
	"merger":  true,
}

var validFinancialMetrics = map[string]bool{
	"all":       true,
	"price":     true,
	"valuation": true,
	"margin":    true,
}

package utils

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultCommissionRate is the platform's cut of a completed job's value.
const DefaultCommissionRate = "0.05"

// ParseCommissionRate parses a rate like "0.05" into an exact decimal. An
// empty string falls back to the default rate.
func ParseCommissionRate(s string) (decimal.Decimal, error) {
	if s == "" {
		s = DefaultCommissionRate
	}
	rate, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid commission rate %q: %w", s, err)
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.Zero, fmt.Errorf("commission rate %q must be between 0 and 1", s)
	}
	return rate, nil
}

// CommissionCents computes the commission owed on a job total, rounded
// half-up to whole cents.
func CommissionCents(totalCents int64, rate decimal.Decimal) int64 {
	return decimal.NewFromInt(totalCents).Mul(rate).Round(0).IntPart()
}

// RatePercent renders a rate as a percentage label, e.g. "0.05" -> "5".
func RatePercent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).String()
}

// TruncateLabel shortens free text for ledger entry descriptions.
func TruncateLabel(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// FormatCents renders a cent amount as a currency string, e.g. 10050 -> "100.50".
func FormatCents(cents int64) string {
	d := decimal.NewFromInt(cents).Div(decimal.NewFromInt(100))
	return d.StringFixed(2)
}

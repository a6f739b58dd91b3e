package domain

import "github.com/shopspring/decimal"

type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

var (
	mediumThreshold = decimal.NewFromInt(5)
	highThreshold   = decimal.NewFromInt(10)
)

// ClassifyChange buckets a signed 24h percentage change by magnitude.
// Thresholds are inclusive: |5.0| is MEDIUM, |10.0| is HIGH.
func ClassifyChange(change24h decimal.Decimal) RiskLevel {
	abs := change24h.Abs()
	switch {
	case abs.GreaterThanOrEqual(highThreshold):
		return RiskHigh
	case abs.GreaterThanOrEqual(mediumThreshold):
		return RiskMedium
	default:
		return RiskLow
	}
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetPrice is one cleaned row out of a provider response.
// Ephemeral: produced fresh on every fetch.
type AssetPrice struct {
	AssetID   string
	Price     decimal.Decimal
	Change24h decimal.Decimal
}

// Observation is one point in the session history log. Immutable once
// appended; Risk is derived from Change24h at creation time.
type Observation struct {
	Timestamp time.Time
	AssetName string
	AssetID   string
	Price     decimal.Decimal
	Change24h decimal.Decimal
	Risk      RiskLevel
}

package application

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"cryptorisk-service/internal/domain"
)

// SnapshotRow is one metric card: display name, rounded price and change,
// risk label.
type SnapshotRow struct {
	Asset     string
	Price     decimal.Decimal
	Change24h decimal.Decimal
	Risk      domain.RiskLevel
}

type SeriesPoint struct {
	Timestamp time.Time
	Price     decimal.Decimal
}

type AssetSeries struct {
	Asset  string
	Points []SeriesPoint
}

// SnapshotOf projects observations from a single fetch into display rows:
// price rounded to 4 decimal places, change to 2.
func SnapshotOf(obs []domain.Observation) []SnapshotRow {
	rows := make([]SnapshotRow, 0, len(obs))
	for _, o := range obs {
		rows = append(rows, SnapshotRow{
			Asset:     o.AssetName,
			Price:     o.Price.Round(4),
			Change24h: o.Change24h.Round(2),
			Risk:      o.Risk,
		})
	}
	return rows
}

// pivotSeries turns log entries into one time series per asset, ascending by
// time, keeping the last price when an asset has several rows for the same
// timestamp. Series are ordered by asset name for stable chart legends.
func pivotSeries(obs []domain.Observation) []AssetSeries {
	perAsset := make(map[string][]SeriesPoint)
	for _, o := range obs {
		perAsset[o.AssetName] = append(perAsset[o.AssetName], SeriesPoint{
			Timestamp: o.Timestamp,
			Price:     o.Price,
		})
	}

	names := make([]string, 0, len(perAsset))
	for name := range perAsset {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]AssetSeries, 0, len(names))
	for _, name := range names {
		pts := perAsset[name]
		sort.SliceStable(pts, func(i, j int) bool {
			return pts[i].Timestamp.Before(pts[j].Timestamp)
		})
		deduped := pts[:0]
		for _, p := range pts {
			if n := len(deduped); n > 0 && deduped[n-1].Timestamp.Equal(p.Timestamp) {
				deduped[n-1].Price = p.Price
				continue
			}
			deduped = append(deduped, p)
		}
		out = append(out, AssetSeries{Asset: name, Points: deduped})
	}
	return out
}

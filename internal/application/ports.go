package application

import (
	"context"
	"time"

	"cryptorisk-service/internal/domain"
)

// HistoryRepo is the session-scoped append-only observation log.
type HistoryRepo interface {
	Append(ctx context.Context, obs []domain.Observation) error
	// Filtered returns entries whose asset name is in names, in insertion order.
	Filtered(ctx context.Context, names []string) ([]domain.Observation, error)
	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]domain.Observation, error)
	Len(ctx context.Context) (int, error)
}

// PriceProvider fetches live prices and 24h change for a set of asset ids.
type PriceProvider interface {
	Fetch(ctx context.Context, ids []string) ([]domain.AssetPrice, error)
}

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now().UTC() }

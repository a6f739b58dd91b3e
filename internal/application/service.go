package application

import (
	"context"
	"fmt"
	"sync"

	"cryptorisk-service/internal/domain"
)

// DashboardService owns one session's state: the append-only history log and
// the result of the most recent successful fetch. Everything the HTTP layer
// renders is derived from these two.
type DashboardService struct {
	history  HistoryRepo
	provider PriceProvider
	catalog  *domain.Catalog
	clock    Clock

	mu        sync.RWMutex
	lastFetch []domain.Observation
}

type Option func(*DashboardService)

func WithClock(c Clock) Option { return func(s *DashboardService) { s.clock = c } }

func NewDashboardService(history HistoryRepo, provider PriceProvider, catalog *domain.Catalog, opts ...Option) *DashboardService {
	s := &DashboardService{
		history:  history,
		provider: provider,
		catalog:  catalog,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.clock == nil {
		s.clock = realClock{}
	}
	return s
}

// Refresh performs one best-effort fetch for the given asset ids, classifies
// the result and appends it to the history log. An empty id set is a no-op
// and never reaches the provider. On provider failure the session state is
// left untouched and the error is returned for the UI banner; the next
// refresh is the only recovery path.
func (s *DashboardService) Refresh(ctx context.Context, ids []string) ([]domain.Observation, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	for _, id := range ids {
		if _, ok := s.catalog.ByID(id); !ok {
			return nil, fmt.Errorf("%w: unknown asset id %q", ErrBadRequest, id)
		}
	}

	prices, err := s.provider.Fetch(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch live prices: %w", err)
	}

	// One shared timestamp per refresh so the chart pivot groups rows
	// from the same fetch together.
	now := s.clock.Now()
	obs := make([]domain.Observation, 0, len(prices))
	for _, p := range prices {
		obs = append(obs, domain.Observation{
			Timestamp: now,
			AssetName: s.catalog.DisplayName(p.AssetID),
			AssetID:   p.AssetID,
			Price:     p.Price,
			Change24h: p.Change24h,
			Risk:      domain.ClassifyChange(p.Change24h),
		})
	}
	if len(obs) == 0 {
		return nil, nil
	}

	if err := s.history.Append(ctx, obs); err != nil {
		return nil, fmt.Errorf("append history: %w", err)
	}
	s.mu.Lock()
	s.lastFetch = obs
	s.mu.Unlock()
	return obs, nil
}

// LatestSnapshot projects the most recent successful fetch into display rows.
// Empty until the first refresh succeeds.
func (s *DashboardService) LatestSnapshot(_ context.Context) []SnapshotRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return SnapshotOf(s.lastFetch)
}

// Series pivots the history entries for the named assets into one ascending
// price series per asset.
func (s *DashboardService) Series(ctx context.Context, names []string) ([]AssetSeries, error) {
	obs, err := s.history.Filtered(ctx, names)
	if err != nil {
		return nil, err
	}
	return pivotSeries(obs), nil
}

// RecentObservations returns the raw table rows, newest first. limit <= 0 or
// above the cap falls back to 100 rows.
func (s *DashboardService) RecentObservations(ctx context.Context, limit int) ([]domain.Observation, error) {
	if limit <= 0 || limit > maxTableRows {
		limit = maxTableRows
	}
	return s.history.Recent(ctx, limit)
}

func (s *DashboardService) Assets() []domain.Asset {
	return s.catalog.Assets()
}

func (s *DashboardService) HistoryLen(ctx context.Context) (int, error) {
	return s.history.Len(ctx)
}

const maxTableRows = 100

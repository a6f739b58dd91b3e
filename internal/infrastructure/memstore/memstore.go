package memstore

import (
	"context"
	"sync"

	"cryptorisk-service/internal/application"
	"cryptorisk-service/internal/domain"
)

// Store is the session history log: append-only, insertion order is time
// order, unbounded for the lifetime of the process. The mutex only guards
// against concurrent HTTP handlers; the workflow itself is user-driven.
type Store struct {
	mu  sync.RWMutex
	log []domain.Observation
}

var _ application.HistoryRepo = (*Store)(nil)

func New() *Store { return &Store{} }

func (s *Store) Append(_ context.Context, obs []domain.Observation) error {
	if len(obs) == 0 {
		return nil
	}
	s.mu.Lock()
	s.log = append(s.log, obs...)
	s.mu.Unlock()
	return nil
}

func (s *Store) Filtered(_ context.Context, names []string) ([]domain.Observation, error) {
	keep := make(map[string]bool, len(names))
	for _, n := range names {
		keep[n] = true
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Observation
	for _, o := range s.log {
		if keep[o.AssetName] {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *Store) Recent(_ context.Context, limit int) ([]domain.Observation, error) {
	if limit <= 0 {
		return nil, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Observation, 0, limit)
	for i := len(s.log) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.log[i])
	}
	return out, nil
}

func (s *Store) Len(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.log), nil
}

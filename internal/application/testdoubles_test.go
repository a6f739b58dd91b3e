package application

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"cryptorisk-service/internal/domain"
)

var ErrProvider = errors.New("provider down")

type fakeHistoryRepo struct {
	log []domain.Observation
	err error
}

func (f *fakeHistoryRepo) Append(_ context.Context, obs []domain.Observation) error {
	if f.err != nil {
		return f.err
	}
	f.log = append(f.log, obs...)
	return nil
}

func (f *fakeHistoryRepo) Filtered(_ context.Context, names []string) ([]domain.Observation, error) {
	if f.err != nil {
		return nil, f.err
	}
	keep := make(map[string]bool, len(names))
	for _, n := range names {
		keep[n] = true
	}
	var out []domain.Observation
	for _, o := range f.log {
		if keep[o.AssetName] {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeHistoryRepo) Recent(_ context.Context, limit int) ([]domain.Observation, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Observation
	for i := len(f.log) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.log[i])
	}
	return out, nil
}

func (f *fakeHistoryRepo) Len(context.Context) (int, error) { return len(f.log), nil }

type fakeProvider struct {
	prices []domain.AssetPrice
	err    error
	calls  int
}

func (f *fakeProvider) Fetch(_ context.Context, ids []string) ([]domain.AssetPrice, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.prices, nil
}

type fakeClock struct{ t time.Time }

func (f fakeClock) Now() time.Time { return f.t }

func price(id string, p, chg float64) domain.AssetPrice {
	return domain.AssetPrice{
		AssetID:   id,
		Price:     decimal.NewFromFloat(p),
		Change24h: decimal.NewFromFloat(chg),
	}
}

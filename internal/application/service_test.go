package application

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"cryptorisk-service/internal/domain"
)

var testTime = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestService(h *fakeHistoryRepo, p *fakeProvider) *DashboardService {
	return NewDashboardService(h, p, domain.DefaultCatalog(), WithClock(fakeClock{t: testTime}))
}

func Test_Refresh_EmptySelection_NoOutboundCall(t *testing.T) {
	t.Parallel()
	h := &fakeHistoryRepo{}
	p := &fakeProvider{}
	svc := newTestService(h, p)

	obs, err := svc.Refresh(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, obs)
	require.Zero(t, p.calls)
	require.Empty(t, h.log)
}

func Test_Refresh_UnknownAssetID(t *testing.T) {
	t.Parallel()
	p := &fakeProvider{}
	svc := newTestService(&fakeHistoryRepo{}, p)

	_, err := svc.Refresh(context.Background(), []string{"bitcoin", "dogeparty"})
	require.ErrorIs(t, err, ErrBadRequest)
	require.Zero(t, p.calls)
}

func Test_Refresh_ClassifiesAndAppends(t *testing.T) {
	t.Parallel()
	h := &fakeHistoryRepo{}
	p := &fakeProvider{prices: []domain.AssetPrice{
		price("bitcoin", 65000.1234, 11.0),
		price("ethereum", 3200.5, -7.0),
		price("solana", 145.2, 1.0),
	}}
	svc := newTestService(h, p)

	obs, err := svc.Refresh(context.Background(), []string{"bitcoin", "ethereum", "solana"})
	require.NoError(t, err)
	require.Len(t, obs, 3)
	require.Len(t, h.log, 3)

	require.Equal(t, "Bitcoin (BTC)", h.log[0].AssetName)
	require.Equal(t, domain.RiskHigh, h.log[0].Risk)
	require.Equal(t, domain.RiskMedium, h.log[1].Risk)
	require.Equal(t, domain.RiskLow, h.log[2].Risk)
	for _, o := range h.log {
		require.True(t, o.Timestamp.Equal(testTime), "all rows of one fetch share a timestamp")
	}
}

func Test_Refresh_ProviderFailure_KeepsState(t *testing.T) {
	t.Parallel()
	h := &fakeHistoryRepo{}
	p := &fakeProvider{prices: []domain.AssetPrice{price("bitcoin", 64000, 2.0)}}
	svc := newTestService(h, p)

	_, err := svc.Refresh(context.Background(), []string{"bitcoin"})
	require.NoError(t, err)
	require.Len(t, svc.LatestSnapshot(context.Background()), 1)

	p.err = ErrProvider
	_, err = svc.Refresh(context.Background(), []string{"bitcoin"})
	require.ErrorIs(t, err, ErrProvider)
	require.Len(t, h.log, 1, "history unchanged after failed fetch")
	require.Len(t, svc.LatestSnapshot(context.Background()), 1, "prior snapshot survives")
}

func Test_Refresh_AppendOrderAcrossFetches(t *testing.T) {
	t.Parallel()
	h := &fakeHistoryRepo{}
	p := &fakeProvider{prices: []domain.AssetPrice{price("bitcoin", 64000, 2.0)}}
	svc := newTestService(h, p)

	for i := 0; i < 5; i++ {
		p.prices = []domain.AssetPrice{price("bitcoin", 64000+float64(i), 2.0)}
		_, err := svc.Refresh(context.Background(), []string{"bitcoin"})
		require.NoError(t, err)
	}
	require.Len(t, h.log, 5)
	for i, o := range h.log {
		require.True(t, decimal.NewFromFloat(64000+float64(i)).Equal(o.Price), "row %d out of order", i)
	}
}

func Test_LatestSnapshot_Rounding(t *testing.T) {
	t.Parallel()
	h := &fakeHistoryRepo{}
	p := &fakeProvider{prices: []domain.AssetPrice{price("bitcoin", 65000.123456, 11.005)}}
	svc := newTestService(h, p)

	_, err := svc.Refresh(context.Background(), []string{"bitcoin"})
	require.NoError(t, err)

	rows := svc.LatestSnapshot(context.Background())
	require.Len(t, rows, 1)
	require.Equal(t, "65000.1235", rows[0].Price.String())
	require.Equal(t, "11.01", rows[0].Change24h.String())
	require.Equal(t, domain.RiskHigh, rows[0].Risk)
}

func Test_Series_ExcludesUnselectedAssets(t *testing.T) {
	t.Parallel()
	h := &fakeHistoryRepo{}
	p := &fakeProvider{prices: []domain.AssetPrice{
		price("bitcoin", 64000, 2.0),
		price("ethereum", 3200, 1.0),
	}}
	svc := newTestService(h, p)
	_, err := svc.Refresh(context.Background(), []string{"bitcoin", "ethereum"})
	require.NoError(t, err)

	series, err := svc.Series(context.Background(), []string{"Bitcoin (BTC)"})
	require.NoError(t, err)
	require.Len(t, series, 1)
	require.Equal(t, "Bitcoin (BTC)", series[0].Asset)
}

func Test_RecentObservations_NewestFirstCapped(t *testing.T) {
	t.Parallel()
	h := &fakeHistoryRepo{}
	p := &fakeProvider{}
	svc := newTestService(h, p)
	for i := 0; i < 120; i++ {
		p.prices = []domain.AssetPrice{price("bitcoin", float64(i), 0)}
		_, err := svc.Refresh(context.Background(), []string{"bitcoin"})
		require.NoError(t, err)
	}

	rows, err := svc.RecentObservations(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, rows, 100)
	require.True(t, decimal.NewFromInt(119).Equal(rows[0].Price), "newest row first")
}

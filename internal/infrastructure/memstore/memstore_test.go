package memstore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"cryptorisk-service/internal/domain"
)

func row(name string, i int) domain.Observation {
	return domain.Observation{
		Timestamp: time.Date(2025, 1, 1, 12, i, 0, 0, time.UTC),
		AssetName: name,
		AssetID:   name,
		Price:     decimal.NewFromInt(int64(i)),
		Risk:      domain.RiskLow,
	}
}

func Test_Append_KeepsInsertionOrder(t *testing.T) {
	t.Parallel()
	s := New()
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		require.NoError(t, s.Append(ctx, []domain.Observation{row("btc", i)}))
	}
	n, err := s.Len(ctx)
	require.NoError(t, err)
	require.Equal(t, 4, n)

	all, err := s.Filtered(ctx, []string{"btc"})
	require.NoError(t, err)
	for i, o := range all {
		require.True(t, decimal.NewFromInt(int64(i)).Equal(o.Price), "row %d reordered", i)
	}
}

func Test_Filtered_ExcludesOtherAssets(t *testing.T) {
	t.Parallel()
	s := New()
	ctx := context.Background()
	require.NoError(t, s.Append(ctx, []domain.Observation{row("btc", 0), row("eth", 1), row("sol", 2)}))

	got, err := s.Filtered(ctx, []string{"btc", "sol"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, o := range got {
		require.NotEqual(t, "eth", o.AssetName)
	}
}

func Test_Recent_NewestFirstAndLimited(t *testing.T) {
	t.Parallel()
	s := New()
	ctx := context.Background()
	for i := 0; i < 10; i++ {
		require.NoError(t, s.Append(ctx, []domain.Observation{row("btc", i)}))
	}

	got, err := s.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.True(t, decimal.NewFromInt(9).Equal(got[0].Price))
	require.True(t, decimal.NewFromInt(7).Equal(got[2].Price))
}

func Test_ConcurrentAppends(t *testing.T) {
	t.Parallel()
	s := New()
	ctx := context.Background()
	done := make(chan error, 8)
	for g := 0; g < 8; g++ {
		go func(g int) {
			var err error
			for i := 0; i < 50; i++ {
				if e := s.Append(ctx, []domain.Observation{row(fmt.Sprintf("asset-%d", g), i)}); e != nil {
					err = e
				}
			}
			done <- err
		}(g)
	}
	for g := 0; g < 8; g++ {
		require.NoError(t, <-done)
	}
	n, err := s.Len(ctx)
	require.NoError(t, err)
	require.Equal(t, 400, n)
}

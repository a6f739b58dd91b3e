package provider

import (
	"context"

	"github.com/shopspring/decimal"

	"cryptorisk-service/internal/application"
	"cryptorisk-service/internal/domain"
)

// Ensure Fake implements application.PriceProvider.
var _ application.PriceProvider = (*Fake)(nil)

// Fake returns the same price/change for every requested id. Used for local
// development (PROVIDER=fake) and in handler tests.
type Fake struct {
	Price  decimal.Decimal
	Change decimal.Decimal
	Err    error
	Calls  int
}

func NewFake(price, change float64) *Fake {
	return &Fake{
		Price:  decimal.NewFromFloat(price),
		Change: decimal.NewFromFloat(change),
	}
}

func (f *Fake) Fetch(_ context.Context, ids []string) ([]domain.AssetPrice, error) {
	f.Calls++
	if f.Err != nil {
		return nil, f.Err
	}
	out := make([]domain.AssetPrice, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.AssetPrice{AssetID: id, Price: f.Price, Change24h: f.Change})
	}
	return out, nil
}

package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"cryptorisk-service/internal/application"
	"cryptorisk-service/internal/domain"
)

const simplePricePath = "/api/v3/simple/price"

// CoinGeckoProvider fetches spot prices with 24h change from the CoinGecko
// simple/price endpoint. No API key required. One best-effort request per
// call; the caller decides what a failure means.
type CoinGeckoProvider struct {
	BaseURL  string
	Currency string
	Client   *http.Client
}

var _ application.PriceProvider = (*CoinGeckoProvider)(nil)

func (p *CoinGeckoProvider) Fetch(ctx context.Context, ids []string) ([]domain.AssetPrice, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if p.BaseURL == "" {
		return nil, errors.New("coingecko: missing base url")
	}
	cur := strings.ToLower(p.Currency)
	if cur == "" {
		cur = "usd"
	}

	u, err := url.Parse(p.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("coingecko: invalid base url: %w", err)
	}
	u.Path = simplePricePath
	q := u.Query()
	q.Set("ids", strings.Join(ids, ","))
	q.Set("vs_currencies", cur)
	q.Set("include_24hr_change", "true")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("coingecko: create request: %w", err)
	}

	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("coingecko: do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("coingecko: status %d", resp.StatusCode)
	}

	// map of asset id -> {"usd": price, "usd_24h_change": pct}
	var body map[string]map[string]float64
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("coingecko: decode response: %w", err)
	}

	changeKey := cur + "_24h_change"
	out := make([]domain.AssetPrice, 0, len(body))
	for _, id := range ids { // request order, not map order
		info, ok := body[id]
		if !ok {
			continue
		}
		price, ok := info[cur]
		if !ok {
			// entry without a price is dropped
			continue
		}
		change := info[changeKey] // missing change defaults to 0
		out = append(out, domain.AssetPrice{
			AssetID:   id,
			Price:     decimal.NewFromFloat(price),
			Change24h: decimal.NewFromFloat(change),
		})
	}
	return out, nil
}

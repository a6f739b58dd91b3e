package domain

import "fmt"

// Asset couples a provider identifier ("bitcoin") with the display name
// shown on the dashboard ("Bitcoin (BTC)").
type Asset struct {
	ID          string
	DisplayName string
}

// Catalog is the static bidirectional id<->display-name mapping. It is
// validated once at construction; lookups afterwards cannot fail partially.
type Catalog struct {
	assets []Asset
	byID   map[string]Asset
	byName map[string]Asset
}

func NewCatalog(assets []Asset) (*Catalog, error) {
	if len(assets) == 0 {
		return nil, fmt.Errorf("catalog: no assets")
	}
	c := &Catalog{
		assets: make([]Asset, len(assets)),
		byID:   make(map[string]Asset, len(assets)),
		byName: make(map[string]Asset, len(assets)),
	}
	copy(c.assets, assets)
	for _, a := range assets {
		if a.ID == "" || a.DisplayName == "" {
			return nil, fmt.Errorf("catalog: empty id or display name in %+v", a)
		}
		if _, dup := c.byID[a.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate id %q", a.ID)
		}
		if _, dup := c.byName[a.DisplayName]; dup {
			return nil, fmt.Errorf("catalog: duplicate display name %q", a.DisplayName)
		}
		c.byID[a.ID] = a
		c.byName[a.DisplayName] = a
	}
	return c, nil
}

// DefaultCatalog returns the built-in coin set used when no assets file is
// configured.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog([]Asset{
		{ID: "bitcoin", DisplayName: "Bitcoin (BTC)"},
		{ID: "ethereum", DisplayName: "Ethereum (ETH)"},
		{ID: "solana", DisplayName: "Solana (SOL)"},
		{ID: "tether", DisplayName: "Tether (USDT)"},
		{ID: "binancecoin", DisplayName: "BNB (BNB)"},
		{ID: "ripple", DisplayName: "XRP (XRP)"},
	})
	if err != nil {
		panic(err)
	}
	return c
}

// Assets returns catalog entries in declaration order.
func (c *Catalog) Assets() []Asset {
	out := make([]Asset, len(c.assets))
	copy(out, c.assets)
	return out
}

func (c *Catalog) ByID(id string) (Asset, bool) {
	a, ok := c.byID[id]
	return a, ok
}

func (c *Catalog) ByName(name string) (Asset, bool) {
	a, ok := c.byName[name]
	return a, ok
}

// DisplayName resolves an id, falling back to the id itself for assets the
// provider returned but the catalog does not know.
func (c *Catalog) DisplayName(id string) string {
	if a, ok := c.byID[id]; ok {
		return a.DisplayName
	}
	return id
}

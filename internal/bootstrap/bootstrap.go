package bootstrap

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"cryptorisk-service/internal/application"
	"cryptorisk-service/internal/config"
	"cryptorisk-service/internal/domain"
	"cryptorisk-service/internal/infrastructure/logx"
	"cryptorisk-service/internal/infrastructure/memstore"
	"cryptorisk-service/internal/infrastructure/provider"
)

// BuildCatalog returns the asset catalog: the built-in coin set, or the
// ASSETS_FILE YAML when configured. Either way it is validated here, once,
// at startup.
func BuildCatalog(cfg config.Config) (*domain.Catalog, error) {
	if cfg.AssetsFile == "" {
		return domain.DefaultCatalog(), nil
	}
	assets, err := config.LoadAssets(cfg.AssetsFile)
	if err != nil {
		return nil, err
	}
	catalog, err := domain.NewCatalog(assets)
	if err != nil {
		return nil, fmt.Errorf("assets file %s: %w", cfg.AssetsFile, err)
	}
	logx.L().Info("loaded asset catalog", zap.String("file", cfg.AssetsFile), zap.Int("assets", len(assets)))
	return catalog, nil
}

// BuildPriceProvider selects the provider implementation from PROVIDER.
func BuildPriceProvider(cfg config.Config) (application.PriceProvider, error) {
	switch cfg.Provider {
	case "coingecko":
		return &provider.CoinGeckoProvider{
			BaseURL:  cfg.CoinGeckoBase,
			Currency: cfg.Currency,
			Client:   &http.Client{Timeout: cfg.FetchTimeout},
		}, nil
	case "fake":
		return provider.NewFake(65000.1234, 2.5), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}

// BuildService wires the dashboard service with a fresh in-memory history
// log. Session state starts empty and dies with the process.
func BuildService(cfg config.Config) (*application.DashboardService, error) {
	catalog, err := BuildCatalog(cfg)
	if err != nil {
		return nil, err
	}
	priceProvider, err := BuildPriceProvider(cfg)
	if err != nil {
		return nil, err
	}
	return application.NewDashboardService(memstore.New(), priceProvider, catalog), nil
}

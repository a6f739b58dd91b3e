package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"cryptorisk-service/internal/domain"
)

type assetEntry struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type assetsFile struct {
	Assets []assetEntry `yaml:"assets"`
}

// LoadAssets reads a YAML asset catalog:
//
//	assets:
//	  - id: bitcoin
//	    name: Bitcoin (BTC)
//
// Validation (uniqueness both ways) happens in domain.NewCatalog.
func LoadAssets(path string) ([]domain.Asset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read assets file: %w", err)
	}
	var f assetsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse assets file: %w", err)
	}
	out := make([]domain.Asset, 0, len(f.Assets))
	for _, e := range f.Assets {
		out = append(out, domain.Asset{ID: e.ID, DisplayName: e.Name})
	}
	return out, nil
}

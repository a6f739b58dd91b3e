package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Common
	Env      string
	LogLevel string
	// API
	Port            string
	ShutdownTimeout time.Duration
	// Provider
	Provider      string // "coingecko" or "fake"
	CoinGeckoBase string
	Currency      string
	FetchTimeout  time.Duration
	// Asset catalog
	AssetsFile string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

// Load reads environment variables and applies defaults.
func Load() Config {
	return Config{
		Env:             getEnv("ENV", "local"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		Port:            getEnv("PORT", "8080"),
		ShutdownTimeout: time.Duration(atoiDef(getEnv("SHUTDOWN_TIMEOUT_MS", "10000"), 10000)) * time.Millisecond,
		Provider:        getEnv("PROVIDER", "coingecko"),
		CoinGeckoBase:   getEnv("COINGECKO_API_BASE", "https://api.coingecko.com"),
		Currency:        getEnv("VS_CURRENCY", "usd"),
		FetchTimeout:    time.Duration(atoiDef(getEnv("FETCH_TIMEOUT_MS", "10000"), 10000)) * time.Millisecond,
		AssetsFile:      getEnv("ASSETS_FILE", ""),
	}
}

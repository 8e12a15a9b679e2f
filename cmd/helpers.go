package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/chainpay-labs/paybot/internal/assistant"
	"github.com/chainpay-labs/paybot/internal/config"
	"github.com/chainpay-labs/paybot/internal/db"
	"github.com/chainpay-labs/paybot/internal/llm"
	"github.com/chainpay-labs/paybot/internal/market"
	"github.com/chainpay-labs/paybot/internal/store"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// openStore opens the SQLite-backed store under the configured data directory.
func openStore(cfg *config.Config) (*store.Store, *db.DB, error) {
	database, err := db.Open(filepath.Join(cfg.DataDir, "paybot.db"))
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	return store.New(database), database, nil
}

// buildEngine wires the assistant engine from config: an optional generative
// provider and a price oracle.
func buildEngine(cfg *config.Config) (*assistant.Engine, error) {
	var gen llm.Provider
	if cfg.Provider != config.ProviderNone {
		provider, err := llm.NewProvider(string(cfg.Provider), cfg.Model, cfg.OllamaHost)
		if err != nil {
			return nil, fmt.Errorf("creating provider: %w", err)
		}
		if cfg.RateLimitRPM > 0 {
			provider = llm.NewRateLimitedProvider(provider, cfg.RateLimitRPM)
		}
		gen = provider
	}

	oracle := buildOracle(cfg)

	return assistant.New(gen, cfg.Model, oracle), nil
}

// buildOracle returns the market oracle: fixtures when offline, otherwise
// CoinGecko behind a TTL cache.
func buildOracle(cfg *config.Config) market.Oracle {
	if cfg.Market.Offline {
		return market.NewStaticOracle()
	}
	ttl := time.Duration(cfg.Market.CacheTTLSeconds) * time.Second
	return market.NewCachedOracle(market.NewCoinGecko(cfg.Market.BaseURL), ttl)
}

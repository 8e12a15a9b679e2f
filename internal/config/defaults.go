package config

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Provider:     ProviderNone,
		Model:        "gpt-4o-mini",
		CompanyName:  "",
		DataDir:      ".paybot",
		RateLimitRPM: 30,
		Market: MarketConfig{
			BaseURL:         "", // empty uses the public CoinGecko API
			CacheTTLSeconds: 60,
		},
		Server: ServerConfig{
			Port: 8790,
		},
	}
}

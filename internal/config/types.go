package config

// ProviderType identifies a text-generation provider.
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderOllama ProviderType = "ollama"
	// ProviderNone disables the generative tier; the assistant answers
	// only from templates and market data.
	ProviderNone ProviderType = "none"
)

// Config is the top-level paybot configuration, corresponding to .paybot.yml.
type Config struct {
	Provider     ProviderType `yaml:"provider" koanf:"provider"`
	Model        string       `yaml:"model" koanf:"model"`
	OllamaHost   string       `yaml:"ollama_host" koanf:"ollama_host"`
	CompanyName  string       `yaml:"company_name" koanf:"company_name"`
	DataDir      string       `yaml:"data_dir" koanf:"data_dir"`
	RateLimitRPM int          `yaml:"rate_limit_rpm" koanf:"rate_limit_rpm"`
	Market       MarketConfig `yaml:"market" koanf:"market"`
	Server       ServerConfig `yaml:"server" koanf:"server"`
}

// MarketConfig configures the price oracle.
type MarketConfig struct {
	BaseURL         string `yaml:"base_url" koanf:"base_url"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds" koanf:"cache_ttl_seconds"`
	// Offline serves fixture quotes instead of calling the market API.
	Offline bool `yaml:"offline" koanf:"offline"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

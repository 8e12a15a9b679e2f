package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Provider != ProviderNone {
		t.Errorf("expected default provider none, got %q", cfg.Provider)
	}
	if cfg.Server.Port != 8790 {
		t.Errorf("expected default port 8790, got %d", cfg.Server.Port)
	}
	if cfg.Market.CacheTTLSeconds != 60 {
		t.Errorf("expected default cache ttl 60, got %d", cfg.Market.CacheTTLSeconds)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".paybot.yml")
	content := `provider: openai
model: gpt-4o
company_name: Acme Labs
server:
  port: 9000
market:
  offline: true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Provider != ProviderOpenAI {
		t.Errorf("expected openai, got %q", cfg.Provider)
	}
	if cfg.CompanyName != "Acme Labs" {
		t.Errorf("expected company name, got %q", cfg.CompanyName)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Server.Port)
	}
	if !cfg.Market.Offline {
		t.Error("expected offline market")
	}
	// Unset fields keep defaults.
	if cfg.RateLimitRPM != 30 {
		t.Errorf("expected default rpm 30, got %d", cfg.RateLimitRPM)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PAYBOT_COMPANY_NAME", "Env Corp")
	t.Setenv("PAYBOT_SERVER__PORT", "9100")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.CompanyName != "Env Corp" {
		t.Errorf("expected env override, got %q", cfg.CompanyName)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("expected env port override, got %d", cfg.Server.Port)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}

	bad := DefaultConfig()
	bad.Provider = "claude"
	if err := bad.Validate(); err == nil {
		t.Error("expected error for unknown provider")
	}

	bad = DefaultConfig()
	bad.Provider = ProviderOpenAI
	bad.Model = ""
	if err := bad.Validate(); err == nil {
		t.Error("expected error for missing model")
	}

	bad = DefaultConfig()
	bad.Server.Port = -1
	if err := bad.Validate(); err == nil {
		t.Error("expected error for invalid port")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".paybot.yml")

	cfg := DefaultConfig()
	cfg.CompanyName = "Round Trip Inc"
	cfg.Provider = ProviderOllama
	cfg.Model = "llama3"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.CompanyName != "Round Trip Inc" || loaded.Provider != ProviderOllama {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

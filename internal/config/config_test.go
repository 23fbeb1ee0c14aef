package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestMustLoadFromEnv_Defaults(t *testing.T) {
	cfg := MustLoadFromEnv()

	if cfg.HTTP.Port != "8080" {
		t.Fatalf("unexpected port: %s", cfg.HTTP.Port)
	}
	if cfg.Provider.Mode != ProviderModeMock {
		t.Fatalf("unexpected provider mode: %s", cfg.Provider.Mode)
	}
	if cfg.Search.Timeout != 30*time.Second || cfg.Search.WeekdayConcurrency != 1 {
		t.Fatalf("unexpected search config: %+v", cfg.Search)
	}
	if cfg.Provider.Amadeus.BaseURL != "https://test.api.amadeus.com" {
		t.Fatalf("unexpected amadeus base url: %s", cfg.Provider.Amadeus.BaseURL)
	}
	if cfg.Cache.Enabled || cfg.Cache.TTL != 5*time.Minute {
		t.Fatalf("unexpected cache config: %+v", cfg.Cache)
	}
}

func TestMustLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("PROVIDER_MODE", "amadeus")
	t.Setenv("AMADEUS_CLIENT_ID", "client")
	t.Setenv("WEEKDAY_CONCURRENCY", "4")
	t.Setenv("MOCK_SEED", "42")

	cfg := MustLoadFromEnv()
	if cfg.Provider.Mode != ProviderModeAmadeus || cfg.Provider.Amadeus.ClientID != "client" {
		t.Fatalf("unexpected provider config: %+v", cfg.Provider)
	}
	if cfg.Search.WeekdayConcurrency != 4 || cfg.Mock.Seed != 42 {
		t.Fatalf("unexpected overrides: %+v %+v", cfg.Search, cfg.Mock)
	}
}

func TestMustLoadByPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("env: test\nprovider:\n  mode: replay\nsearch:\n  timeout: 5s\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg := MustLoadByPath(path)
	if cfg.Env != "test" || cfg.Provider.Mode != ProviderModeReplay || cfg.Search.Timeout != 5*time.Second {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.HTTP.Port != "8080" {
		t.Fatalf("defaults should still apply: %+v", cfg.HTTP)
	}
}

func TestMustLoadByPath_MissingFile(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for missing file")
		}
	}()
	MustLoadByPath(filepath.Join(t.TempDir(), "missing.yaml"))
}

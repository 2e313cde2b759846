package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %s", err)
	}
	if cfg.WebServerAddress != ":8000" {
		t.Errorf("address = %q, want :8000", cfg.WebServerAddress)
	}
	if cfg.OpenF1BaseURL != "" {
		t.Errorf("base url = %q, want empty (client falls back to the default)", cfg.OpenF1BaseURL)
	}
	if cfg.RequestTimeout != 5*time.Minute {
		t.Errorf("request timeout = %s, want 5m", cfg.RequestTimeout)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("WEBSERVER_ADDRESS", ":9100")
	t.Setenv("OPENF1_BASE_URL", "http://localhost:8081/v1")
	t.Setenv("REQUEST_TIMEOUT", "90s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %s", err)
	}
	if cfg.WebServerAddress != ":9100" {
		t.Errorf("address = %q", cfg.WebServerAddress)
	}
	if cfg.OpenF1BaseURL != "http://localhost:8081/v1" {
		t.Errorf("base url = %q", cfg.OpenF1BaseURL)
	}
	if cfg.RequestTimeout != 90*time.Second {
		t.Errorf("request timeout = %s", cfg.RequestTimeout)
	}
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "not-a-duration")

	if _, err := Load(); err == nil {
		t.Error("expected an error for a malformed duration")
	}
}

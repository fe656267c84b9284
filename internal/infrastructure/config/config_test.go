package config_test

import (
	"testing"
	"time"

	"github.com/smartmoney/walletd/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default HTTP port 8080, got %s", cfg.HTTPPort)
	}

	if cfg.SessionTTL != time.Hour {
		t.Fatalf("expected default session TTL 1h, got %s", cfg.SessionTTL)
	}

	if cfg.RateLimitCleanupInterval != time.Hour {
		t.Fatalf("expected default cleanup interval 1h, got %s", cfg.RateLimitCleanupInterval)
	}

	if cfg.LogLevel != "info" || cfg.LogFormat != "json" {
		t.Fatalf("expected default logging settings, got %s/%s", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("RATE_LIMIT_BURST", "5")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.HTTPPort != "9090" {
		t.Fatalf("expected HTTP port override, got %s", cfg.HTTPPort)
	}

	if cfg.SessionTTL != 30*time.Minute {
		t.Fatalf("expected session TTL override, got %s", cfg.SessionTTL)
	}

	if cfg.RateLimitBurst != 5 {
		t.Fatalf("expected burst override, got %d", cfg.RateLimitBurst)
	}

	if cfg.LogFormat != "console" {
		t.Fatalf("expected log format override, got %s", cfg.LogFormat)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("HTTP_READ_TIMEOUT", "not-a-duration")

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}

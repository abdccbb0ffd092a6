package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// unset clears k for the duration of the test.
func unset(t *testing.T, k string) {
	t.Helper()
	t.Setenv(k, "")
	os.Unsetenv(k)
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "FRONTEND_DIR", "LOG_LEVEL", "SERVICE_NAME", "OTEL_HOST", "OTEL_SAMPLE_RATIO", "REDIS_ADDR", "IDEMPOTENCY_TTL"} {
		unset(t, k)
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != ":8000" || cfg.FrontendDir != "frontend" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.TraceProbability != 1.0 || cfg.IdempotencyTTL != 24*time.Hour {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.RedisAddr != "" || cfg.OTELHost != "" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadEnvFile(t *testing.T) {
	unset(t, "FRONTEND_DIR")
	unset(t, "REDIS_ADDR")
	t.Setenv("HTTP_ADDR", ":9000")

	path := filepath.Join(t.TempDir(), ".env")
	data := "FRONTEND_DIR=/srv/www\nREDIS_ADDR=localhost:6379\nHTTP_ADDR=:1234\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.FrontendDir != "/srv/www" || cfg.RedisAddr != "localhost:6379" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.HTTPAddr != ":9000" {
		t.Fatalf("environment should win over file, got %q", cfg.HTTPAddr)
	}
}

func TestLoadInvalid(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.env")

	t.Setenv("OTEL_SAMPLE_RATIO", "often")
	if _, err := Load(missing); err == nil {
		t.Fatal("expected error for bad ratio")
	}
	for _, ratio := range []string{"NaN", "-0.1", "1.5", "+Inf"} {
		t.Setenv("OTEL_SAMPLE_RATIO", ratio)
		if _, err := Load(missing); err == nil {
			t.Fatalf("expected error for ratio %q", ratio)
		}
	}

	t.Setenv("OTEL_SAMPLE_RATIO", "0.5")
	t.Setenv("IDEMPOTENCY_TTL", "forever")
	if _, err := Load(missing); err == nil {
		t.Fatal("expected error for bad ttl")
	}
}

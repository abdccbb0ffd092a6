// Package config loads service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the service settings.
type Config struct {
	HTTPAddr         string
	FrontendDir      string
	LogLevel         string
	ServiceName      string
	OTELHost         string
	TraceProbability float64
	RedisAddr        string
	IdempotencyTTL   time.Duration
}

// Load reads the given env files (".env" when none are named) and then the
// process environment. Missing files are ignored; variables already set in
// the environment win over file values.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	cfg := Config{
		HTTPAddr:    getenv("HTTP_ADDR", ":8000"),
		FrontendDir: getenv("FRONTEND_DIR", "frontend"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		ServiceName: getenv("SERVICE_NAME", "biltiflow"),
		OTELHost:    os.Getenv("OTEL_HOST"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
	}

	var err error
	cfg.TraceProbability, err = strconv.ParseFloat(getenv("OTEL_SAMPLE_RATIO", "1.0"), 64)
	if err != nil {
		return Config{}, fmt.Errorf("OTEL_SAMPLE_RATIO: %w", err)
	}
	if math.IsNaN(cfg.TraceProbability) || cfg.TraceProbability < 0 || cfg.TraceProbability > 1 {
		return Config{}, fmt.Errorf("OTEL_SAMPLE_RATIO: %v out of range [0,1]", cfg.TraceProbability)
	}
	cfg.IdempotencyTTL, err = time.ParseDuration(getenv("IDEMPOTENCY_TTL", "24h"))
	if err != nil {
		return Config{}, fmt.Errorf("IDEMPOTENCY_TTL: %w", err)
	}
	if cfg.IdempotencyTTL <= 0 {
		return Config{}, fmt.Errorf("IDEMPOTENCY_TTL: must be positive")
	}
	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

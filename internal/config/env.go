package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override file values.
const (
	EnvOutputDir = "RAW_DATA_DIR"
	EnvSeed      = "FIXTURES_SEED"
	EnvLogLevel  = "LOG_LEVEL"
)

// ApplyEnv overlays environment overrides onto cfg. A .env file in the working
// directory is loaded first, best-effort; variables already set win over it.
func ApplyEnv(cfg *Config) error {
	_ = godotenv.Load()

	if v := os.Getenv(EnvOutputDir); v != "" {
		cfg.Output.Dir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.App.LogLevel = v
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}
	return nil
}

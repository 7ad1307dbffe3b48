// Package config exposes strongly typed fixture generator settings loaded from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// App captures process-wide runtime settings such as name, logging, and metrics export.
type App struct {
	Name        string `yaml:"name"`
	LogLevel    string `yaml:"log_level"`
	PrettyLogs  bool   `yaml:"pretty_logs"`
	MetricsFile string `yaml:"metrics_file"`
}

// Output describes where and how fixture documents are written.
type Output struct {
	Dir      string `yaml:"dir"`
	Format   string `yaml:"format"` // json|jsonl
	Indent   int    `yaml:"indent"`
	Manifest bool   `yaml:"manifest"`
}

// Window bounds the generated history. Dates are YYYY-MM-DD; an empty End means now.
type Window struct {
	Start    string `yaml:"start"`
	End      string `yaml:"end"`
	Location string `yaml:"location"` // IANA name, "Local" or "UTC"
}

// Config collects every configuration leaf for easy marshaling from YAML.
type Config struct {
	App    App    `yaml:"app"`
	Output Output `yaml:"output"`
	Window Window `yaml:"window"`
	// Seed pins the random source; zero draws a fresh one per run.
	Seed int64 `yaml:"seed"`
}

// Default returns a config with every optional field filled in.
// Indent is seeded here rather than in applyDefaults because 0 is a valid value.
func Default() *Config {
	cfg := &Config{Output: Output{Indent: DefaultIndent}}
	cfg.applyDefaults()
	return cfg
}

// Load reads a YAML file from disk, hydrates a Config struct, and fills defaults.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	config := Default()
	if err := yaml.NewDecoder(file).Decode(config); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	config.applyDefaults()
	return config, nil
}

// Save persists a Config struct to disk as YAML.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

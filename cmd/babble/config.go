package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/natefinch/atomic"
)

// Config holds every setting the CLI reads. The corpus can come from a
// line-oriented text file, a SQLite database, or both.
type Config struct {
	LogLevel   string          `json:"log_level"`
	LetterCase string          `json:"letter_case"`
	Filters    []string        `json:"filters"`
	MaxLength  int             `json:"max_length"`
	Sentences  int             `json:"sentences"`
	CorpusPath string          `json:"corpus_path"`
	Database   *DatabaseConfig `json:"database_config"`
}

// DatabaseConfig points the corpus loader at a SQLite database. Query must
// return one sentence per row in its first column.
type DatabaseConfig struct {
	Path  string `json:"path"`
	Query string `json:"query"`
}

// DefaultConfig creates a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:   "info",
		LetterCase: "unchanged",
		Filters:    []string{},
		MaxLength:  20,
		Sentences:  1,
		CorpusPath: "./corpus.txt",
		Database: &DatabaseConfig{
			Path:  "",
			Query: "SELECT sentence FROM sentences",
		},
	}
}

// LoadConfig reads the configuration from a JSON file at the given path. If
// the file doesn't exist, it creates one with default values. Environment
// variables (optionally from a .env file) override file settings afterwards.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			var data []byte
			data, err = json.MarshalIndent(config, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("failed to marshal default config: %w", err)
			}
			if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
				// Warn instead of failing, the CLI can still run with defaults.
				fmt.Printf("warning: failed to write default config file: %v\n", err)
			}
			applyEnvOverrides(config)
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err = json.Unmarshal(file, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyEnvOverrides(config)
	return config, nil
}

// applyEnvOverrides applies BABBLE_* environment variables on top of the
// file config. A missing .env file is not an error.
func applyEnvOverrides(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("BABBLE_LOG_LEVEL"); v != "" {
		config.LogLevel = v
	}
	if v := os.Getenv("BABBLE_CORPUS"); v != "" {
		config.CorpusPath = v
	}
	if v := os.Getenv("BABBLE_DB"); v != "" {
		if config.Database == nil {
			config.Database = &DatabaseConfig{Query: "SELECT sentence FROM sentences"}
		}
		config.Database.Path = v
	}
}

// Package config provides configuration loading and validation for the CLI.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Environment variables consulted by FromEnv.
const (
	EnvLexicon  = "RESUME_ANALYZER_LEXICON"
	EnvLogLevel = "RESUME_ANALYZER_LOG_LEVEL"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; zero values are filled from Defaults. The tailoring
// threshold is a pointer so that an explicit 0 (never add the tailoring note)
// survives the merge.
type Config struct {
	// Paths
	Lexicon string `json:"lexicon,omitempty"` // Path to a YAML/JSON lexicon file; empty uses the built-in lexicon

	// Analysis
	TopN               int     `json:"top_n,omitempty" validate:"gte=0,lte=1000"`               // Keywords reported per document
	TailoringThreshold *float64 `json:"tailoring_threshold,omitempty" validate:"omitempty,gte=0,lte=1"` // Score below which the tailoring note is added; nil means unset
	Concurrency        int     `json:"concurrency,omitempty" validate:"gte=0,lte=256"`          // Parallel job analyses for rank-jobs
	FetchTimeout       int     `json:"fetch_timeout_seconds,omitempty" validate:"gte=0,lte=600"` // HTTP timeout for job URLs

	// Behavior
	LogLevel string `json:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	Verbose  bool   `json:"verbose,omitempty"` // Print human-readable summaries to stderr
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		TopN:               15,
		TailoringThreshold: Float64(0.7),
		Concurrency:        4,
		FetchTimeout:       30,
		LogLevel:           "info",
	}
}

// Float64 returns a pointer to v, for optional fields such as TailoringThreshold.
func Float64(v float64) *float64 {
	return &v
}

// Threshold returns the configured tailoring threshold, or the built-in
// default when it is unset.
func (c *Config) Threshold() float64 {
	if c.TailoringThreshold == nil {
		return *Defaults().TailoringThreshold
	}
	return *c.TailoringThreshold
}

// FetchTimeoutDuration returns FetchTimeout as a time.Duration.
func (c *Config) FetchTimeoutDuration() time.Duration {
	return time.Duration(c.FetchTimeout) * time.Second
}

// LoadConfig loads configuration from a JSON file.
// Unknown fields are rejected so that typos surface as errors.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a partial Config from the RESUME_ANALYZER_* variables.
func FromEnv(getenv func(string) string) Config {
	return Config{
		Lexicon:  getenv(EnvLexicon),
		LogLevel: strings.ToLower(getenv(EnvLogLevel)),
	}
}

// Validate checks field ranges and that a configured lexicon file exists.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Lexicon != "" {
		if _, err := os.Stat(c.Lexicon); os.IsNotExist(err) {
			return fmt.Errorf("config error: lexicon file not found: %s", c.Lexicon)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Lexicon == "" {
		result.Lexicon = defaults.Lexicon
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.TopN == 0 {
		result.TopN = defaults.TopN
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}
	if result.FetchTimeout == 0 {
		result.FetchTimeout = defaults.FetchTimeout
	}
	if result.TailoringThreshold == nil && defaults.TailoringThreshold != nil {
		result.TailoringThreshold = Float64(*defaults.TailoringThreshold)
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Copyright (c) 2024-2025 Loralabs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for the Lora client.
//
// Settings come from TOML with sensible defaults and environment variable
// overrides, in order of precedence:
//   - Environment variables (LORA_*, GEMINI_API_KEY)
//   - <data dir>/config.toml
//   - Built-in defaults
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// PlaceholderAPIKey is the value shipped in the sample config. It is treated
// the same as a missing key.
const PlaceholderAPIKey = "your_api_key_here"

// ErrInvalidAPIKey aborts startup: without a key no response can ever be
// produced. The message is user-facing.
var ErrInvalidAPIKey = errors.New("Lütfen geçerli bir Gemini API anahtarı ekleyin. config.toml dosyasındaki api_key değerini veya LORA_GEMINI_API_KEY ortam değişkenini güncelleyin.")

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete Lora configuration.
type Config struct {
	// DataDir is where all state lives: conversations, memory, theme, the
	// config file itself, and the log (default: ~/.lora)
	DataDir string `toml:"data_dir"`

	// Gemini configuration
	Gemini GeminiConfig `toml:"gemini"`
}

// GeminiConfig contains the remote model configuration.
type GeminiConfig struct {
	// APIKey authenticates against the Gemini API. Required.
	APIKey string `toml:"api_key"`
	// Model is the model to generate with (default: "gemini-pro")
	Model string `toml:"model"`
	// BaseURL is the API base URL
	BaseURL string `toml:"base_url"`
	// TimeoutSecs bounds how long a single turn is awaited (default: 30)
	TimeoutSecs int `toml:"timeout_secs"`
	// Sampling parameters
	Temperature     float64 `toml:"temperature"`
	TopP            float64 `toml:"top_p"`
	TopK            int     `toml:"top_k"`
	MaxOutputTokens int     `toml:"max_output_tokens"`
}

// Timeout returns the await duration.
func (g GeminiConfig) Timeout() time.Duration {
	return time.Duration(g.TimeoutSecs) * time.Second
}

// Default returns the built-in default configuration. The data directory is
// resolved in Load so tests can point it elsewhere.
func Default() *Config {
	return &Config{
		Gemini: GeminiConfig{
			Model:           "gemini-pro",
			BaseURL:         "https://generativelanguage.googleapis.com",
			TimeoutSecs:     30,
			Temperature:     0.7,
			TopP:            0.8,
			TopK:            40,
			MaxOutputTokens: 8192,
		},
	}
}

// =============================================================================
// LOAD
// =============================================================================

// Load loads the configuration: defaults, then <data dir>/config.toml when
// present, then environment overrides, then validation.
func Load() (*Config, error) {
	dataDir := os.Getenv("LORA_DATA_DIR")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		dataDir = filepath.Join(homeDir, ".lora")
	}
	return LoadFromDir(dataDir)
}

// LoadFromDir loads the configuration rooted at an explicit data directory.
func LoadFromDir(dataDir string) (*Config, error) {
	cfg := Default()
	cfg.DataDir = dataDir

	path := filepath.Join(dataDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		ensureSecurePermissions(path)
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
		// The file may not override where it was found.
		cfg.DataDir = dataDir
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnvOverrides applies environment variable overrides.
// LORA_GEMINI_API_KEY wins over the plain GEMINI_API_KEY fallback.
func (c *Config) ApplyEnvOverrides() {
	if key := os.Getenv("LORA_GEMINI_API_KEY"); key != "" {
		c.Gemini.APIKey = key
	} else if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.Gemini.APIKey = key
	}
	if model := os.Getenv("LORA_MODEL"); model != "" {
		c.Gemini.Model = model
	}
}

// SetDefaults fills in any zero values with defaults.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Gemini.Model == "" {
		c.Gemini.Model = defaults.Gemini.Model
	}
	if c.Gemini.BaseURL == "" {
		c.Gemini.BaseURL = defaults.Gemini.BaseURL
	}
	if c.Gemini.TimeoutSecs <= 0 {
		c.Gemini.TimeoutSecs = defaults.Gemini.TimeoutSecs
	}
	if c.Gemini.Temperature == 0 {
		c.Gemini.Temperature = defaults.Gemini.Temperature
	}
	if c.Gemini.TopP == 0 {
		c.Gemini.TopP = defaults.Gemini.TopP
	}
	if c.Gemini.TopK == 0 {
		c.Gemini.TopK = defaults.Gemini.TopK
	}
	if c.Gemini.MaxOutputTokens == 0 {
		c.Gemini.MaxOutputTokens = defaults.Gemini.MaxOutputTokens
	}
}

// Validate checks the configuration. A missing or placeholder API key is
// fatal.
func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" || c.Gemini.APIKey == PlaceholderAPIKey {
		return ErrInvalidAPIKey
	}
	if c.DataDir == "" {
		return errors.New("data_dir must not be empty")
	}
	return nil
}

// ensureSecurePermissions tightens the config file to owner-only access, as
// it holds the API key. Failure to chmod is not fatal.
func ensureSecurePermissions(path string) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	if info.Mode().Perm() != 0600 {
		os.Chmod(path, 0600)
	}
}

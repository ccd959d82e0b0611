// Package config provides centralized configuration for Zenith runtime values.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// AppName is the application name used for config and data directories.
const AppName = "zenith"

// RuntimeConfig holds all runtime configuration values.
type RuntimeConfig struct {
	// AI configuration for the insight requester
	AI AIConfig `yaml:"ai"`

	// Storage configuration
	Storage StorageConfig `yaml:"storage"`

	// Finance configuration
	Finance FinanceConfig `yaml:"finance"`
}

// AIConfig holds generative-text service configuration.
type AIConfig struct {
	// APIKey is the Gemini API key. Empty disables insights.
	APIKey string `yaml:"api_key"`

	// Model is the model name passed to GenerateContent.
	// Default: gemini-2.5-flash
	Model string `yaml:"model"`

	// Timeout bounds a single insight request.
	// Default: 30s
	Timeout time.Duration `yaml:"timeout"`
}

// Configured reports whether credentials are present.
func (c AIConfig) Configured() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// StorageConfig holds storage-related configuration.
type StorageConfig struct {
	// DBPath is the Badger directory. ":memory:" selects in-memory mode.
	// Default: $XDG_DATA_HOME/zenith/db
	DBPath string `yaml:"db_path"`
}

// FinanceConfig holds finance display configuration.
type FinanceConfig struct {
	// Currency is the ISO 4217 code used to display amounts.
	// Default: USD
	Currency string `yaml:"currency"`
}

// DefaultRuntimeConfig returns the default runtime configuration.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		AI: AIConfig{
			Model:   "gemini-2.5-flash",
			Timeout: 30 * time.Second,
		},
		Storage: StorageConfig{
			DBPath: filepath.Join(xdg.DataHome, AppName, "db"),
		},
		Finance: FinanceConfig{
			Currency: "USD",
		},
	}
}

// DefaultPath returns the config file location under the XDG config home.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}

// Load builds the configuration: defaults, then the YAML file at path (if it
// exists), then environment overrides. An empty path uses DefaultPath.
func Load(path string) (*RuntimeConfig, error) {
	cfg := DefaultRuntimeConfig()

	if path == "" {
		path = DefaultPath()
	}
	if err := cfg.loadFromFile(path); err != nil {
		return nil, err
	}

	cfg.loadFromEnv()
	return cfg, nil
}

// loadFromFile merges the YAML file at path into c. A missing file is not an error.
func (c *RuntimeConfig) loadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// loadFromEnv loads configuration overrides from environment variables.
func (c *RuntimeConfig) loadFromEnv() {
	// AI configuration; the first non-empty key wins
	for _, name := range []string{"ZENITH_API_KEY", "GEMINI_API_KEY", "API_KEY"} {
		if v := os.Getenv(name); v != "" {
			c.AI.APIKey = v
			break
		}
	}
	if v := os.Getenv("ZENITH_MODEL"); v != "" {
		c.AI.Model = v
	}
	if v := os.Getenv("ZENITH_AI_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.AI.Timeout = d
		}
	}

	// Storage configuration
	if v := os.Getenv("ZENITH_DATABASE"); v != "" {
		c.Storage.DBPath = v
	}

	// Finance configuration
	if v := os.Getenv("ZENITH_CURRENCY"); v != "" {
		c.Finance.Currency = strings.ToUpper(v)
	}
}

// ReloadFromEnv reloads configuration from environment variables.
// This is useful for testing or when environment variables change.
func (c *RuntimeConfig) ReloadFromEnv() {
	c.loadFromEnv()
}

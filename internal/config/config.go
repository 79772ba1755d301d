// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/interview-agent/internal/types"
)

// DefaultBankFile is the bank document used when none is configured.
const DefaultBankFile = "dynamic_questions.json"

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	BankFile    string `json:"bank_file,omitempty"`    // Path to the question bank JSON document
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key for AI feedback
	Model       string `json:"model,omitempty"`        // Gemini model name
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL URL for the bank mirror
	Role        string `json:"role,omitempty"`         // Default candidate role
	Count       int    `json:"count,omitempty"`        // Default questions per session
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed session information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
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
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("config error: 'count' must be non-negative")
	}

	if c.Role != "" {
		switch c.Role {
		case types.RoleFinance, types.RoleOperations, types.RoleDataAnalytics:
		default:
			return fmt.Errorf("config error: unknown role %q", c.Role)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.BankFile == "" {
		result.BankFile = defaults.BankFile
	}
	if result.BankFile == "" {
		result.BankFile = DefaultBankFile
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Role == "" {
		result.Role = defaults.Role
	}
	if result.Count == 0 {
		result.Count = defaults.Count
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/hubhub/cvparser/internal/types"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or come from
// CLI flags, which take precedence after merging.
type Config struct {
	// Behavior
	APIKey         string `json:"api_key,omitempty"`          // Gemini API key for the AI parsing path
	UseAI          bool   `json:"use_ai,omitempty"`           // Prefer AI extraction with regex fallback
	IncludeRawText *bool  `json:"include_raw_text,omitempty"` // Keep raw text in output (default true)
	StrictParsing  bool   `json:"strict_parsing,omitempty"`   // Fail parses missing required fields
	Verbose        bool   `json:"verbose,omitempty"`          // Print detailed parse output

	// Output
	OutDir string `json:"out_dir,omitempty"` // Directory for emitted JSON artifacts

	// Limits
	Concurrency int `json:"concurrency,omitempty" validate:"gte=0,lte=64"` // Parallel file parses (0 = sequential)

	// MVP holds the user-declared profile fields for validate runs.
	MVP *types.MVPData `json:"mvp,omitempty"`
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

// Validate checks that the configuration has valid values. Required
// fields are not checked here; CLI flag validation handles those after
// merging.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.UseAI && c.APIKey == "" {
		return fmt.Errorf("config error: 'use_ai' requires 'api_key'")
	}

	if c.OutDir != "" {
		if info, err := os.Stat(c.OutDir); err == nil && !info.IsDir() {
			return fmt.Errorf("config error: 'out_dir' is not a directory: %s", c.OutDir)
		}
	}

	if c.MVP != nil {
		if err := c.MVP.Validate(); err != nil {
			return fmt.Errorf("config error: invalid mvp block: %w", err)
		}
	}

	return nil
}

// IncludeRaw resolves the tri-state include_raw_text setting.
func (c *Config) IncludeRaw() bool {
	return c.IncludeRawText == nil || *c.IncludeRawText
}

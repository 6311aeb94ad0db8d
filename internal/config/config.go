// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Defaults used when neither config file, environment nor flags provide a value.
const (
	DefaultPort         = 8080
	DefaultMinJobLength = 30
	DefaultMaxUploadMB  = 10
)

// Config holds runtime configuration. All fields are optional; missing values
// fall back to defaults or environment variables.
type Config struct {
	Port         int    `json:"port,omitempty"`           // HTTP listen port
	DatabaseURL  string `json:"database_url,omitempty"`   // PostgreSQL URL for analysis history; empty disables history
	MinJobLength int    `json:"min_job_length,omitempty"` // Minimum job description length in characters
	MaxUploadMB  int    `json:"max_upload_mb,omitempty"`  // Per-file upload size cap
	Vocabulary   string `json:"vocabulary,omitempty"`     // Path to an external vocabulary YAML (empty: embedded)
	Careers      string `json:"careers,omitempty"`        // Path to an external career clusters YAML (empty: embedded)
}

// Load reads configuration from an optional JSON file, then lets environment
// variables override, then applies defaults. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DATABASE_URL"); v != "" && c.DatabaseURL == "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("PORT"); v != "" && c.Port == 0 {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("VOCABULARY_FILE"); v != "" && c.Vocabulary == "" {
		c.Vocabulary = v
	}
	if v := os.Getenv("CAREERS_FILE"); v != "" && c.Careers == "" {
		c.Careers = v
	}
}

func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.MinJobLength == 0 {
		c.MinJobLength = DefaultMinJobLength
	}
	if c.MaxUploadMB == 0 {
		c.MaxUploadMB = DefaultMaxUploadMB
	}
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	if c.MinJobLength < 0 {
		return fmt.Errorf("config error: min_job_length must be non-negative")
	}
	if c.MaxUploadMB < 1 {
		return fmt.Errorf("config error: max_upload_mb must be at least 1")
	}
	if c.Vocabulary != "" {
		if _, err := os.Stat(c.Vocabulary); os.IsNotExist(err) {
			return fmt.Errorf("config error: vocabulary file not found: %s", c.Vocabulary)
		}
	}
	if c.Careers != "" {
		if _, err := os.Stat(c.Careers); os.IsNotExist(err) {
			return fmt.Errorf("config error: careers file not found: %s", c.Careers)
		}
	}
	return nil
}

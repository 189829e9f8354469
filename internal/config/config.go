// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Inputs
	Resumes   []string `json:"resumes,omitempty"`    // Explicit resume file paths
	ResumeDir string   `json:"resume_dir,omitempty"` // Directory scanned for resume files
	JD        string   `json:"jd,omitempty"`         // Path to job description text file
	JDURL     string   `json:"jd_url,omitempty"`     // URL to fetch the job posting from
	Skills    string   `json:"skills,omitempty"`     // Path to skills list (one term per line)

	// Embedding
	Model          string `json:"model,omitempty"`           // Embedding model name
	ModelCacheDir  string `json:"model_cache_dir,omitempty"` // Directory for downloaded model files
	EmbeddingCache string `json:"embedding_cache,omitempty"` // SQLite file for the vector cache

	// Scoring
	ExperienceCap float64 `json:"experience_cap,omitempty" validate:"omitempty,gt=0"` // Years ceiling for the experience score

	// Output
	Output string `json:"output,omitempty"` // CSV output path

	// Behavior
	LogLevel string `json:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	Verbose  bool   `json:"verbose,omitempty"` // Print per-candidate breakdowns
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
	if c.JD != "" && c.JDURL != "" {
		return fmt.Errorf("config error: 'jd' and 'jd_url' are mutually exclusive")
	}

	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.JD != "" {
		if _, err := os.Stat(c.JD); os.IsNotExist(err) {
			return fmt.Errorf("config error: jd file not found: %s", c.JD)
		}
	}
	if c.ResumeDir != "" {
		if _, err := os.Stat(c.ResumeDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume dir not found: %s", c.ResumeDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if len(result.Resumes) == 0 {
		result.Resumes = defaults.Resumes
	}
	if result.ResumeDir == "" {
		result.ResumeDir = defaults.ResumeDir
	}
	if result.JD == "" {
		result.JD = defaults.JD
	}
	if result.JDURL == "" {
		result.JDURL = defaults.JDURL
	}
	if result.Skills == "" {
		result.Skills = defaults.Skills
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.ModelCacheDir == "" {
		result.ModelCacheDir = defaults.ModelCacheDir
	}
	if result.EmbeddingCache == "" {
		result.EmbeddingCache = defaults.EmbeddingCache
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.ExperienceCap == 0 {
		result.ExperienceCap = defaults.ExperienceCap
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Package config provides configuration loading and management for
// skillcheck. Configuration only affects CLI policy (paths, strict
// mode, output); engine behavior is fixed by the catalog and tables it
// is constructed with.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete skillcheck configuration.
type Config struct {
	Skills   SkillsConfig   `yaml:"skills"`
	Rules    RulesConfig    `yaml:"rules"`
	Validate ValidateConfig `yaml:"validate"`
	Report   ReportConfig   `yaml:"report"`
}

// SkillsConfig configures where skill documents live.
type SkillsConfig struct {
	// Dir is the skills root directory; each skill is <dir>/<name>/SKILL.md.
	Dir string `yaml:"dir"`
	// Known lists the skill names expected to exist. Used for CLI
	// hints only; discovery is always filesystem-driven.
	Known []string `yaml:"known"`
}

// RulesConfig configures where rule and table data is loaded from.
// Empty paths mean the built-in catalog and tables.
type RulesConfig struct {
	// File is an optional YAML rule catalog path.
	File string `yaml:"file"`
	// TablesFile is an optional YAML import-tables path.
	TablesFile string `yaml:"tables_file"`
}

// ValidateConfig configures validation policy.
type ValidateConfig struct {
	// Strict treats warnings as failures.
	Strict bool `yaml:"strict"`
}

// ReportConfig configures report output.
type ReportConfig struct {
	// Format is "text" or "json".
	Format string `yaml:"format"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Skills: SkillsConfig{
			Dir:   "skills",
			Known: []string{"langgraph", "langchain-rag", "langchain-chains"},
		},
		Report: ReportConfig{
			Format: "text",
		},
	}
}

// Check checks that the configuration is valid.
func (c *Config) Check() error {
	if c.Skills.Dir == "" {
		return fmt.Errorf("skills.dir is required")
	}
	if c.Report.Format != "text" && c.Report.Format != "json" {
		return fmt.Errorf("report.format must be \"text\" or \"json\", got %q", c.Report.Format)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence
// for non-zero values).
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Skills.Dir != "" {
		c.Skills.Dir = other.Skills.Dir
	}
	if len(other.Skills.Known) > 0 {
		c.Skills.Known = other.Skills.Known
	}
	if other.Rules.File != "" {
		c.Rules.File = other.Rules.File
	}
	if other.Rules.TablesFile != "" {
		c.Rules.TablesFile = other.Rules.TablesFile
	}
	if other.Validate.Strict {
		c.Validate.Strict = true
	}
	if other.Report.Format != "" {
		c.Report.Format = other.Report.Format
	}
}

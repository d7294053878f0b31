package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Skills.Dir != "skills" {
		t.Errorf("expected default skills dir %q, got %q", "skills", cfg.Skills.Dir)
	}
	if len(cfg.Skills.Known) != 3 {
		t.Errorf("expected 3 known skills, got %d", len(cfg.Skills.Known))
	}
	if cfg.Report.Format != "text" {
		t.Errorf("expected default report format text, got %s", cfg.Report.Format)
	}
	if cfg.Validate.Strict {
		t.Error("strict mode should be off by default")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing skills dir",
			modify:  func(c *Config) { c.Skills.Dir = "" },
			wantErr: true,
		},
		{
			name:    "json format",
			modify:  func(c *Config) { c.Report.Format = "json" },
			wantErr: false,
		},
		{
			name:    "unknown format",
			modify:  func(c *Config) { c.Report.Format = "xml" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Check()
			if (err != nil) != tt.wantErr {
				t.Errorf("Check() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
skills:
  dir: "/srv/skills"
  known:
    - langgraph
rules:
  file: "rules.yaml"
  tables_file: "tables.yaml"
validate:
  strict: true
report:
  format: json
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Skills.Dir != "/srv/skills" {
		t.Errorf("expected skills dir /srv/skills, got %s", cfg.Skills.Dir)
	}
	if cfg.Rules.File != "rules.yaml" {
		t.Errorf("expected rules file rules.yaml, got %s", cfg.Rules.File)
	}
	if cfg.Rules.TablesFile != "tables.yaml" {
		t.Errorf("expected tables file tables.yaml, got %s", cfg.Rules.TablesFile)
	}
	if !cfg.Validate.Strict {
		t.Error("expected strict mode enabled")
	}
	if cfg.Report.Format != "json" {
		t.Errorf("expected json format, got %s", cfg.Report.Format)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestMerge(t *testing.T) {
	base := DefaultConfig()
	other := &Config{}
	other.Skills.Dir = "/other/skills"
	other.Validate.Strict = true

	base.Merge(other)

	if base.Skills.Dir != "/other/skills" {
		t.Errorf("expected merged skills dir /other/skills, got %s", base.Skills.Dir)
	}
	if !base.Validate.Strict {
		t.Error("expected strict mode after merge")
	}
	// Untouched fields keep their defaults.
	if base.Report.Format != "text" {
		t.Errorf("expected report format text after merge, got %s", base.Report.Format)
	}
	if len(base.Skills.Known) != 3 {
		t.Errorf("expected known skills preserved, got %d", len(base.Skills.Known))
	}
}

func TestSaveAndReload(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Skills.Dir = "/saved/skills"
	if err := cfg.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if loaded.Skills.Dir != "/saved/skills" {
		t.Errorf("expected reloaded skills dir /saved/skills, got %s", loaded.Skills.Dir)
	}
}

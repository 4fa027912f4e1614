package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestLoadConfig_NoDefaultFile_ReturnsDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Mode != "persona" {
		t.Errorf("expected default mode persona, got %q", cfg.Mode)
	}
	if cfg.Output.Format != "terminal" {
		t.Errorf("expected default format terminal, got %q", cfg.Output.Format)
	}
	if cfg.Weights != "" {
		t.Errorf("expected no default weights path, got %q", cfg.Weights)
	}
}

func TestLoadConfig_DefaultFilePresent_Loaded(t *testing.T) {
	dir := t.TempDir()
	content := "mode: integrated\n"
	if err := os.WriteFile(filepath.Join(dir, ".mr-review.yml"), []byte(content), 0o644); err != nil {
		t.Fatalf("writing default config: %v", err)
	}
	t.Chdir(dir)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Mode != "integrated" {
		t.Errorf("expected mode integrated from default file, got %q", cfg.Mode)
	}
}

func TestLoadConfig_ExplicitMissingFile_Error(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config, got nil")
	}
}

func TestLoadConfig_AllFields_Parsed(t *testing.T) {
	path := writeConfigFile(t, `
version: "1"
mode: integrated
weights: ./weights.yml
thresholds:
  selection: 50
  mention: 75
prompt:
  system: Follow the team review charter.
output:
  format: json
  verbose: true
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Version != "1" {
		t.Errorf("expected version 1, got %q", cfg.Version)
	}
	if cfg.Mode != "integrated" {
		t.Errorf("expected mode integrated, got %q", cfg.Mode)
	}
	if cfg.Weights != "./weights.yml" {
		t.Errorf("expected weights path, got %q", cfg.Weights)
	}
	if cfg.Thresholds.Selection != 50 || cfg.Thresholds.Mention != 75 {
		t.Errorf("expected thresholds 50/75, got %d/%d", cfg.Thresholds.Selection, cfg.Thresholds.Mention)
	}
	if cfg.Prompt.System != "Follow the team review charter." {
		t.Errorf("expected prompt override, got %q", cfg.Prompt.System)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("expected format json, got %q", cfg.Output.Format)
	}
	if !cfg.Output.Verbose {
		t.Error("expected verbose true")
	}
}

func TestLoadConfig_PartialFile_DefaultsApplied(t *testing.T) {
	path := writeConfigFile(t, "version: \"1\"\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Mode != "persona" {
		t.Errorf("expected default mode persona, got %q", cfg.Mode)
	}
	if cfg.Output.Format != "terminal" {
		t.Errorf("expected default format terminal, got %q", cfg.Output.Format)
	}
}

func TestLoadConfig_MalformedYAML_Error(t *testing.T) {
	path := writeConfigFile(t, "mode: [unclosed")

	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("expected error for malformed yaml, got nil")
	}
}

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Version != "1" {
		t.Errorf("expected version 1, got %q", cfg.Version)
	}
	if cfg.Mode != "persona" {
		t.Errorf("expected mode persona, got %q", cfg.Mode)
	}
	if cfg.Output.Format != "terminal" {
		t.Errorf("expected format terminal, got %q", cfg.Output.Format)
	}
}

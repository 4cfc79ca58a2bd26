package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error loading defaults, got %v", err)
	}

	if cfg.Indent != 4 {
		t.Errorf("expected default indent 4, got %d", cfg.Indent)
	}
	if !cfg.Inference.DetectEnums {
		t.Error("expected enum detection on by default")
	}
	if !cfg.Inference.DetectFormats {
		t.Error("expected format detection on by default")
	}
	if cfg.Inference.DetectMaps {
		t.Error("expected map detection off by default")
	}
	if cfg.Output != "" {
		t.Errorf("expected no default output path, got %s", cfg.Output)
	}
}

func TestLoad_WithConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	configContent := `
top_level: Person
output: person.js
indent: 2
inference:
  detect_enums: false
  detect_maps: true
`
	os.WriteFile("quickshape.yml", []byte(configContent), 0644)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error loading config, got %v", err)
	}

	if cfg.TopLevel != "Person" {
		t.Errorf("expected top level 'Person', got %s", cfg.TopLevel)
	}
	if cfg.Output != "person.js" {
		t.Errorf("expected output 'person.js', got %s", cfg.Output)
	}
	if cfg.Indent != 2 {
		t.Errorf("expected indent 2, got %d", cfg.Indent)
	}
	if cfg.Inference.DetectEnums {
		t.Error("expected enum detection disabled by config")
	}
	if !cfg.Inference.DetectMaps {
		t.Error("expected map detection enabled by config")
	}
	if !cfg.Inference.DetectFormats {
		t.Error("expected format detection to keep its default")
	}
}

func TestLoad_InvalidIndent(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	os.WriteFile("quickshape.yml", []byte("indent: 99\n"), 0644)

	if _, err := Load(); err == nil {
		t.Error("expected validation error for out-of-range indent")
	}
}

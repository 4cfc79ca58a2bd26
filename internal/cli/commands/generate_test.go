package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTopLevelFromFilename(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"person.json", "person"},
		{"samples/order-items.json", "order-items"},
		{"data", "data"},
	}

	for _, tt := range tests {
		if got := topLevelFromFilename(tt.path); got != tt.want {
			t.Errorf("topLevelFromFilename(%q): expected %q, got %q", tt.path, tt.want, got)
		}
	}
}

func TestGenerateCommand_WritesOutput(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	sample := filepath.Join(tmpDir, "person.json")
	if err := os.WriteFile(sample, []byte(`{"name": "Ada", "friend": {"name": "Bob"}}`), 0644); err != nil {
		t.Fatalf("Failed to write sample: %v", err)
	}
	output := filepath.Join(tmpDir, "person.js")

	cmd := NewGenerateCommand()
	cmd.SetArgs([]string{sample, "-o", output, "--force"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	code := string(data)

	if !strings.Contains(code, `import PropTypes from "prop-types";`) {
		t.Error("expected prop-types import in output")
	}
	if !strings.Contains(code, "let _Person;") {
		t.Error("expected hoisted declaration derived from the filename")
	}
	if !strings.Contains(code, "export const Person = _Person;") {
		t.Error("expected exported top-level binding")
	}
	if !strings.Contains(code, `"name": PropTypes.string,`) {
		t.Error("expected property validator in output")
	}
}

func TestGenerateCommand_TopLevelFlag(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	sample := filepath.Join(tmpDir, "data.json")
	if err := os.WriteFile(sample, []byte(`["x", "y"]`), 0644); err != nil {
		t.Fatalf("Failed to write sample: %v", err)
	}
	output := filepath.Join(tmpDir, "out.js")

	cmd := NewGenerateCommand()
	cmd.SetArgs([]string{sample, "-o", output, "--force", "--top-level", "tags"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}

	if !strings.Contains(string(data), "export const Tags = PropTypes.arrayOf(PropTypes.string);") {
		t.Errorf("expected direct array binding for the named top level, got:\n%s", data)
	}
}

func TestGenerateCommand_MissingSample(t *testing.T) {
	cmd := NewGenerateCommand()
	cmd.SetArgs([]string{"does-not-exist.json", "--force"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	if err := cmd.Execute(); err == nil {
		t.Error("expected an error for a missing sample file")
	}
}

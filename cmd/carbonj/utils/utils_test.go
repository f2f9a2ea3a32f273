package utils

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "carbonj.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.LogLevel != "warning" || config.LogFormat != "text" || config.Journal || config.WorkspaceRoot != "" {
		t.Errorf("unexpected defaults: %+v", config)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, "log_format: json\njournal: true\nworkspace_root: "+root+"\n")

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.LogLevel != "warning" {
		t.Errorf("unset keys should keep their defaults, got %q", config.LogLevel)
	}
	if config.LogFormat != "json" || !config.Journal || config.WorkspaceRoot != root {
		t.Errorf("unexpected config: %+v", config)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := map[string]string{
		"bad level":      "log_level: loud\n",
		"bad format":     "log_format: xml\n",
		"missing root":   "workspace_root: /definitely/not/here\n",
		"wrong type":     "journal: [1, 2]\n",
		"malformed yaml": "log_level: [\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, content)); err == nil {
				t.Error("expected an error")
			}
		})
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestDecodeAndValidateReportsValidationErrors(t *testing.T) {
	var target struct {
		Name string `mapstructure:"name" validate:"required"`
	}

	err := DecodeAndValidate(map[string]interface{}{}, &target)
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		t.Fatalf("expected validation errors, got %v", err)
	}
}

func TestNewRunId(t *testing.T) {
	first, second := NewRunId(), NewRunId()
	if first == second {
		t.Error("run ids should be unique")
	}
	if !strings.HasPrefix(first, CarbonjInstanceId+"-") {
		t.Errorf("run id %q should start with the instance id", first)
	}
}

func TestJournalVars(t *testing.T) {
	vars := JournalVars("carbonj", logrus.Fields{
		"run_id":      "abc",
		"duration-ms": 12,
		"_private":    true,
		"__":          "dropped",
	})

	want := map[string]string{
		"RUN_ID":            "abc",
		"DURATION_MS":       "12",
		"PRIVATE":           "true",
		"SYSLOG_IDENTIFIER": "carbonj",
	}
	if len(vars) != len(want) {
		t.Fatalf("unexpected vars: %v", vars)
	}
	for key, value := range want {
		if vars[key] != value {
			t.Errorf("%s: expected %q, got %q", key, value, vars[key])
		}
	}
}

func TestFileAndDirectoryExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.py")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if !FileExists(file) || FileExists(dir) || FileExists(filepath.Join(dir, "b.py")) {
		t.Error("FileExists returned a wrong answer")
	}
	if !DirectoryExists(dir) || DirectoryExists(file) {
		t.Error("DirectoryExists returned a wrong answer")
	}
}

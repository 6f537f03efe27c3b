package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	commonerrors "github.com/deploymenttheory/go-fscheck/internal/common/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "go-fscheck.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestInitializeFromFile(t *testing.T) {
	path := writeConfig(t, `
verbose: true
log_format: json
report:
  format: plist
  plist_format: binary
  digest: blake2b
  summary: true
`)

	if err := Initialize(path); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if !ConfigLoaded || ConfigFile != path {
		t.Errorf("ConfigLoaded = %v, ConfigFile = %q", ConfigLoaded, ConfigFile)
	}
	if !Instance.Verbose || Instance.Debug || Instance.LogFormat != "json" {
		t.Errorf("core settings = %+v", Instance)
	}
	if Instance.Report.Format != "plist" || Instance.Report.PlistFormat != "binary" ||
		Instance.Report.Digest != "blake2b" || !Instance.Report.Summary {
		t.Errorf("report settings = %+v", Instance.Report)
	}
	if Instance.Report.Output != "" {
		t.Errorf("Report.Output = %q, want default", Instance.Report.Output)
	}
}

func TestInitializeEnvironmentOverride(t *testing.T) {
	path := writeConfig(t, "report:\n  format: json\n")
	t.Setenv("FSCHECK_REPORT_FORMAT", "text")
	t.Setenv("FSCHECK_DEBUG", "true")

	if err := Initialize(path); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if Instance.Report.Format != "text" || !Instance.Debug {
		t.Errorf("environment did not override: %+v", Instance)
	}
}

func TestInitializeDefaults(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("FSCHECK_ENV", "development")

	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if ConfigLoaded {
		t.Errorf("ConfigLoaded = true with no config file present")
	}
	if Instance.LogFormat != "human" || Instance.Report.Format != "text" || Instance.Report.Digest != "sha256" ||
		Instance.Report.PlistFormat != "xml" {
		t.Errorf("defaults = %+v", Instance)
	}
}

func TestInitializeErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"bad report format", "report:\n  format: html\n", commonerrors.ErrConfigInvalid},
		{"bad digest", "report:\n  digest: md5\n", commonerrors.ErrConfigInvalid},
		{"bad plist format", "report:\n  plist_format: yaml\n", commonerrors.ErrConfigInvalid},
		{"bad log format", "log_format: xml\n", commonerrors.ErrConfigInvalid},
		{"bad yaml", "report: [\n", commonerrors.ErrConfigParseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Initialize(writeConfig(t, tt.body)); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	missing := filepath.Join(t.TempDir(), "missing.yaml")
	if err := Initialize(missing); !errors.Is(err, commonerrors.ErrConfigParseError) {
		t.Errorf("explicit missing config: expected ErrConfigParseError, got %v", err)
	}
}

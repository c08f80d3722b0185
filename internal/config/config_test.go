package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dcf77.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "language = \"de\"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Default()
	want.Language = "de"
	if cfg != want {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
language = "en-GB"
pivot = 1976
format = "YAML"
log_level = "debug"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Pivot != 1976 || cfg.Format != "yaml" || cfg.LogLevel != "debug" || cfg.Language != "en-GB" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoadZeroPivot(t *testing.T) {
	cfg, err := Load(writeConfig(t, "pivot = 0\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Pivot != 0 {
		t.Fatalf("explicit zero pivot replaced by %d", cfg.Pivot)
	}
}

func TestNormalize(t *testing.T) {
	cfg := Config{Language: "de", Pivot: 2000, Format: " JSON ", LogLevel: "Warn"}
	Normalize(&cfg)
	if cfg.Format != "json" || cfg.LogLevel != "warn" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"format":    "format = \"xml\"\n",
		"log_level": "log_level = \"loud\"\n",
		"pivot":     "pivot = -5\n",
		"syntax":    "pivot = [\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			if err == nil {
				t.Fatal("expected error")
			}
			if name != "syntax" && !strings.Contains(err.Error(), name) {
				t.Fatalf("error should mention %s: %v", name, err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("explicit missing file should fail")
	}

	chdir(t, t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("absent default file should not fail: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

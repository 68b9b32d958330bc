package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/blackwell-systems/passgauge/internal/generator"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing file must not be an error, got %v", err)
	}
	if cfg.Generator.Length != nil {
		t.Error("expected an all-unset config for a missing file")
	}
}

func TestLoadEmptyPath(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Error("expected an error for an empty path")
	}
}

func TestLoadAndApplyGenerator(t *testing.T) {
	path := writeConfig(t, `
[generator]
length = 24
symbols = false
exclude-similar = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	gen := generator.DefaultConfig()
	cfg.ApplyGenerator(&gen)

	if gen.Length != 24 {
		t.Errorf("expected length 24, got %d", gen.Length)
	}
	if gen.Symbols {
		t.Error("expected symbols disabled")
	}
	if !gen.ExcludeSimilar {
		t.Error("expected exclude-similar enabled")
	}
	// Unset fields keep the built-in defaults.
	if !gen.Uppercase || !gen.Lowercase || !gen.Numbers {
		t.Error("unset fields must keep defaults")
	}
}

func TestAuditDefaults(t *testing.T) {
	path := writeConfig(t, `
[audit]
record = true
fail-under = 50
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.RecordByDefault() {
		t.Error("expected record default true")
	}
	if cfg.FailUnderDefault() != 50 {
		t.Errorf("expected fail-under 50, got %d", cfg.FailUnderDefault())
	}

	var unset FileConfig
	if unset.RecordByDefault() {
		t.Error("unset record must default to false")
	}
	if unset.FailUnderDefault() != 0 {
		t.Error("unset fail-under must default to 0")
	}
}

func TestLoadMalformedConfig(t *testing.T) {
	path := writeConfig(t, `[generator`)
	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed TOML")
	}
}

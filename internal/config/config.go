// Package config loads the optional TOML configuration file that
// supplies generator defaults and audit options. Flags always win over
// file values; file values win over built-in defaults.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/blackwell-systems/passgauge/internal/generator"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Generator GeneratorConfig `toml:"generator"`
	Audit     AuditConfig     `toml:"audit"`
}

// GeneratorConfig maps generator defaults. Nil fields are unset and
// leave the built-in default untouched.
type GeneratorConfig struct {
	Length         *int  `toml:"length"`
	Uppercase      *bool `toml:"uppercase"`
	Lowercase      *bool `toml:"lowercase"`
	Numbers        *bool `toml:"numbers"`
	Symbols        *bool `toml:"symbols"`
	ExcludeSimilar *bool `toml:"exclude-similar"`
	Pronounceable  *bool `toml:"pronounceable"`
}

// AuditConfig maps bulk-audit defaults.
type AuditConfig struct {
	Record    *bool `toml:"record"`
	FailUnder *int  `toml:"fail-under"`
}

// Load reads a TOML config from the given path. A missing file is not
// an error: the zero FileConfig applies every built-in default.
func Load(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// ApplyGenerator overlays the file's generator settings on a config.
func (f FileConfig) ApplyGenerator(cfg *generator.Config) {
	g := f.Generator
	if g.Length != nil {
		cfg.Length = *g.Length
	}
	if g.Uppercase != nil {
		cfg.Uppercase = *g.Uppercase
	}
	if g.Lowercase != nil {
		cfg.Lowercase = *g.Lowercase
	}
	if g.Numbers != nil {
		cfg.Numbers = *g.Numbers
	}
	if g.Symbols != nil {
		cfg.Symbols = *g.Symbols
	}
	if g.ExcludeSimilar != nil {
		cfg.ExcludeSimilar = *g.ExcludeSimilar
	}
	if g.Pronounceable != nil {
		cfg.Pronounceable = *g.Pronounceable
	}
}

// RecordByDefault reports whether audits should be recorded when the
// flag is not given.
func (f FileConfig) RecordByDefault() bool {
	return f.Audit.Record != nil && *f.Audit.Record
}

// FailUnderDefault returns the configured fail-under threshold, or 0
// when unset (never fail).
func (f FileConfig) FailUnderDefault() int {
	if f.Audit.FailUnder == nil {
		return 0
	}
	return *f.Audit.FailUnder
}

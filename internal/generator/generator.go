// Package generator produces random passwords from a configurable
// charset or from an alternating consonant/vowel scheme. All randomness
// comes from crypto/rand.
package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Character ranges selected by the config flags.
const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// Look-alike characters stripped by ExcludeSimilar.
	similarChars = "il1Lo0O"

	// Pronounceable mode alternates between these two sets and may
	// close with one digit and one symbol from the short sets below.
	consonantChars         = "bcdfghjklmnpqrstvwxz"
	vowelChars             = "aeiou"
	pronounceableSymbolSet = "!@#$%"
)

// Length bounds accepted by Generate.
const (
	MinLength = 4
	MaxLength = 128
)

// ErrEmptyCharset is returned when every include flag is off and
// pronounceable mode is not selected. This is a configuration error the
// caller should surface to the user.
var ErrEmptyCharset = errors.New("generator: no character classes selected")

// Config selects the shape of generated passwords.
type Config struct {
	Length         int
	Uppercase      bool
	Lowercase      bool
	Numbers        bool
	Symbols        bool
	ExcludeSimilar bool
	Pronounceable  bool
}

// DefaultConfig returns the generation defaults: 16 characters drawn
// from all four classes.
func DefaultConfig() Config {
	return Config{
		Length:    16,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// Generate produces a password matching the config. The result always
// has exactly Length characters. It fails with ErrEmptyCharset when the
// resolved charset is empty, or with a range error for a Length outside
// [MinLength, MaxLength].
func Generate(cfg Config) (string, error) {
	if cfg.Length < MinLength || cfg.Length > MaxLength {
		return "", fmt.Errorf("generator: length %d outside [%d,%d]", cfg.Length, MinLength, MaxLength)
	}

	if cfg.Pronounceable {
		return generatePronounceable(cfg)
	}

	charset := buildCharset(cfg)
	if charset == "" {
		return "", ErrEmptyCharset
	}

	var sb strings.Builder
	sb.Grow(cfg.Length)
	for i := 0; i < cfg.Length; i++ {
		c, err := randomChar(charset)
		if err != nil {
			return "", err
		}
		sb.WriteByte(c)
	}
	return sb.String(), nil
}

// buildCharset concatenates the ranges enabled by the config, then
// strips look-alikes when ExcludeSimilar is set.
func buildCharset(cfg Config) string {
	var sb strings.Builder
	if cfg.Lowercase {
		sb.WriteString(lowercaseChars)
	}
	if cfg.Uppercase {
		sb.WriteString(uppercaseChars)
	}
	if cfg.Numbers {
		sb.WriteString(digitChars)
	}
	if cfg.Symbols {
		sb.WriteString(symbolChars)
	}

	charset := sb.String()
	if cfg.ExcludeSimilar {
		charset = strings.Map(func(r rune) rune {
			if strings.ContainsRune(similarChars, r) {
				return -1
			}
			return r
		}, charset)
	}
	return charset
}

// generatePronounceable alternates consonant/vowel picks, optionally
// closes with a digit and a symbol when the config asks for them and
// room remains, and truncates to the exact requested length.
func generatePronounceable(cfg Config) (string, error) {
	var sb strings.Builder
	pairs := (cfg.Length + 1) / 2
	for i := 0; i < pairs; i++ {
		c, err := randomChar(consonantChars)
		if err != nil {
			return "", err
		}
		sb.WriteByte(c)
		v, err := randomChar(vowelChars)
		if err != nil {
			return "", err
		}
		sb.WriteByte(v)
	}

	if cfg.Numbers && sb.Len() < cfg.Length {
		d, err := randomChar(digitChars)
		if err != nil {
			return "", err
		}
		sb.WriteByte(d)
	}
	if cfg.Symbols && sb.Len() < cfg.Length {
		s, err := randomChar(pronounceableSymbolSet)
		if err != nil {
			return "", err
		}
		sb.WriteByte(s)
	}

	out := sb.String()
	if len(out) > cfg.Length {
		out = out[:cfg.Length]
	}
	return out, nil
}

// randomChar draws one uniformly random character from the set using
// crypto/rand.
func randomChar(set string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(set))))
	if err != nil {
		return 0, fmt.Errorf("generator: random source: %w", err)
	}
	return set[n.Int64()], nil
}

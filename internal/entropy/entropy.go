// Package entropy estimates password entropy from the observed character
// pool and the password length, then discounts it for structure that
// shrinks the effective search space.
package entropy

import (
	"math"
	"regexp"
	"unicode"

	"github.com/blackwell-systems/passgauge/internal/refdata"
)

var lettersThenDigits = regexp.MustCompile(`^[a-zA-Z]+[0-9]+$`)

// Bits returns the pattern-adjusted entropy of a password in bits.
//
// The raw estimate is length * log2(poolSize) where the pool is the sum of
// the character classes actually present (26 lower, 26 upper, 10 digits,
// 33 symbols). Three multiplicative discounts follow, in order: repeated
// character runs, keyboard/sequential substrings, and the letters-then-
// digits shape. The result is floored at zero.
func Bits(password string) float64 {
	runes := []rune(password)
	if len(runes) == 0 {
		return 0
	}

	pool := poolSize(password)
	bits := float64(len(runes)) * math.Log2(float64(pool))

	// Runs of a repeated character contribute little real entropy.
	if repeated := repeatedRunChars(runes); repeated > 0 {
		bits *= 1 - (float64(repeated)/float64(len(runes)))*0.25
	}

	// A keyboard or sequential substring discounts proportionally to how
	// much of the password it covers.
	if ratio := longestTableMatchRatio(password); ratio > 0 {
		bits *= 1 - (0.2 + 0.1*ratio)
	}

	if lettersThenDigits.MatchString(password) {
		bits *= 0.9
	}

	if bits < 0 {
		return 0
	}
	return bits
}

// PoolSize returns the character pool implied by the classes present in
// the password. A minimum of 10 guards against log2(0) for inputs made
// entirely of unclassifiable runes.
func PoolSize(password string) int {
	return poolSize(password)
}

func poolSize(password string) int {
	hasLower := false
	hasUpper := false
	hasDigit := false
	hasSymbol := false

	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	pool := 0
	if hasLower {
		pool += 26
	}
	if hasUpper {
		pool += 26
	}
	if hasDigit {
		pool += 10
	}
	if hasSymbol {
		pool += 33
	}
	if pool == 0 {
		pool = 10
	}
	return pool
}

// repeatedRunChars counts every character that belongs to a maximal run
// of length >= 2 of the same character.
func repeatedRunChars(runes []rune) int {
	total := 0
	i := 0
	for i < len(runes) {
		j := i + 1
		for j < len(runes) && runes[j] == runes[i] {
			j++
		}
		if run := j - i; run >= 2 {
			total += run
		}
		i = j
	}
	return total
}

// longestTableMatchRatio returns the span ratio of the longest keyboard or
// sequential table match, or 0 when neither table matches.
func longestTableMatchRatio(password string) float64 {
	best := len(refdata.LongestKeyboardMatch(password))
	if seq := len(refdata.LongestSequentialMatch(password)); seq > best {
		best = seq
	}
	if best == 0 {
		return 0
	}
	return float64(best) / float64(len([]rune(password)))
}

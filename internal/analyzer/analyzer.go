// Package analyzer combines length, character diversity, entropy, the
// common-password check, and detected patterns into a single 1-100 score
// with a strength tier and feedback list.
package analyzer

import (
	"math"
	"unicode"

	"github.com/blackwell-systems/passgauge/internal/classifier"
	"github.com/blackwell-systems/passgauge/internal/entropy"
	"github.com/blackwell-systems/passgauge/internal/patterns"
)

// Assess analyzes a password and returns its full assessment. It never
// fails: an empty password yields the degenerate minimum assessment.
// Score components:
//   - Diversity (up to 40): 10 points per character class present
//   - Length bonus (up to 30): thresholds at 6/8/12/16
//   - Entropy bonus (up to 20): thresholds at 30/50/70/90 bits
//   - Consistency bonus: +min(10, length)
//   - Common-password penalty: -40
//   - Per-pattern adjustments from the pattern detector
func Assess(password string) *Assessment {
	a := &Assessment{
		Tier:     TierVeryWeak,
		Patterns: []patterns.Match{},
		Issues:   []string{},
	}

	runes := []rune(password)
	if len(runes) == 0 {
		a.Score = 1
		return a
	}

	a.Length = len(runes)
	symbolCount := 0
	for _, r := range runes {
		switch {
		case unicode.IsLower(r):
			a.HasLower = true
		case unicode.IsUpper(r):
			a.HasUpper = true
		case unicode.IsDigit(r):
			a.HasDigit = true
		default:
			a.HasSymbol = true
			symbolCount++
		}
	}

	a.EntropyBits = entropy.Bits(password)
	a.Patterns = patterns.Detect(password)
	a.IsCommon = classifier.IsLikelyCommonPassword(password)

	score := float64(a.CharClassCount() * 10)

	// A lone symbol parked at either edge is a predictable placement.
	if symbolCount == 1 && a.Length < 16 && score < 80 {
		first := runes[0]
		last := runes[a.Length-1]
		if isSymbol(first) || isSymbol(last) {
			score -= math.Max(3, math.Round(10-float64(a.Length)/4))
			a.Issues = append(a.Issues, "Distribute symbols through the password instead of only at the edges")
		}
	}
	if a.Length > 20 && float64(symbolCount)/float64(a.Length) < 0.05 {
		score -= 2
	}

	switch {
	case a.Length >= 16:
		score += 30
	case a.Length >= 12:
		score += 25
	case a.Length >= 8:
		score += 15
	case a.Length >= 6:
		score += 10
	default:
		score += 5
		a.Issues = append(a.Issues, "Too short: use at least 8 characters")
	}

	switch {
	case a.EntropyBits > 90:
		score += 20
	case a.EntropyBits > 70:
		score += 15
	case a.EntropyBits > 50:
		score += 10
	case a.EntropyBits > 30:
		score += 5
	}

	if a.IsCommon {
		score -= 40
		a.Issues = append(a.Issues, "Matches a known common password or weak formula")
	}

	for _, m := range a.Patterns {
		score += m.Adjustment
		if m.Adjustment < 0 {
			a.Issues = append(a.Issues, "Detected "+m.Description)
		}
	}

	// Consistency bonus: a longer password never loses to a shorter one
	// with the identical pattern profile.
	score += math.Min(10, float64(a.Length))

	if !a.HasUpper {
		a.Issues = append(a.Issues, "Add uppercase letters")
	}
	if !a.HasLower {
		a.Issues = append(a.Issues, "Add lowercase letters")
	}
	if !a.HasDigit {
		a.Issues = append(a.Issues, "Add digits")
	}
	if !a.HasSymbol {
		a.Issues = append(a.Issues, "Add symbols")
	}

	a.Score = clamp(int(math.Round(score)), 1, 100)

	// A diverse, long, pattern-free, uncommon password is never rated
	// below 65 regardless of how the additive pipeline landed.
	if a.CharClassCount() == 4 && a.Length >= 12 && len(a.Patterns) == 0 && !a.IsCommon && a.Score < 65 {
		a.Score = 65
	}

	shift := 0
	if len(a.Patterns) > 0 {
		shift += 10
	}
	if a.IsCommon {
		shift += 10
	}
	a.Tier = tierFor(a.Score, shift)

	// Weak patterned passwords report a capped entropy so callers do not
	// present an inflated theoretical figure.
	a.AdjustedEntropyBits = a.EntropyBits
	if len(a.Patterns) > 0 && a.Score < 25 {
		a.AdjustedEntropyBits = math.Min(a.EntropyBits, 40)
	}

	return a
}

// tierFor maps a clamped score to a tier. The shift raises every
// threshold: a patterned or common password needs a higher raw score to
// reach the same tier.
func tierFor(score, shift int) Tier {
	switch {
	case score >= 90+shift:
		return TierExcellent
	case score >= 80+shift:
		return TierVeryStrong
	case score >= 70+shift:
		return TierStrong
	case score >= 50+shift:
		return TierModerate
	case score >= 30+shift:
		return TierWeak
	default:
		return TierVeryWeak
	}
}

func isSymbol(r rune) bool {
	return !unicode.IsLower(r) && !unicode.IsUpper(r) && !unicode.IsDigit(r)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package analyzer

import "github.com/blackwell-systems/passgauge/internal/patterns"

// Tier is one of six ordered strength labels.
type Tier string

const (
	TierVeryWeak   Tier = "very weak"
	TierWeak       Tier = "weak"
	TierModerate   Tier = "moderate"
	TierStrong     Tier = "strong"
	TierVeryStrong Tier = "very strong"
	TierExcellent  Tier = "excellent"
)

// Rank returns the tier's position in the ordering, 0 = very weak.
func (t Tier) Rank() int {
	switch t {
	case TierExcellent:
		return 5
	case TierVeryStrong:
		return 4
	case TierStrong:
		return 3
	case TierModerate:
		return 2
	case TierWeak:
		return 1
	default:
		return 0
	}
}

// Assessment is the full result of analyzing one password. It is a pure
// function output: recomputed from scratch on every call, owned by the
// caller, never cached or shared.
type Assessment struct {
	Score               int     // clamped to [1,100]
	Tier                Tier    // derived from Score with threshold shifts
	EntropyBits         float64 // raw pattern-adjusted entropy
	AdjustedEntropyBits float64 // reported entropy, capped for weak patterned passwords
	Patterns            []patterns.Match
	Issues              []string
	HasUpper            bool
	HasLower            bool
	HasDigit            bool
	HasSymbol           bool
	Length              int
	IsCommon            bool
}

// CharClassCount returns how many of the four character classes appear.
func (a *Assessment) CharClassCount() int {
	n := 0
	for _, present := range []bool{a.HasUpper, a.HasLower, a.HasDigit, a.HasSymbol} {
		if present {
			n++
		}
	}
	return n
}

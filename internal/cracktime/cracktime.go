// Package cracktime projects how long a password would survive three
// attack speeds, discounted by the weakening patterns the analyzer found.
package cracktime

import (
	"math"
	"regexp"

	"github.com/blackwell-systems/passgauge/internal/analyzer"
	"github.com/blackwell-systems/passgauge/internal/classifier"
	"github.com/blackwell-systems/passgauge/internal/patterns"
)

// Guesses per second for each attack model.
const (
	RateOnline    = 1e3  // throttled online guessing
	RateOffline   = 1e9  // offline attack on a fast hash
	RateOptimized = 5e10 // GPU cluster with an optimized pipeline
)

// Estimate holds the three time-to-crack projections in seconds. Each is
// independently formattable with FormatSeconds.
type Estimate struct {
	OnlineSeconds    float64
	OfflineSeconds   float64
	OptimizedSeconds float64
}

var (
	lettersThenDigits = regexp.MustCompile(`^([a-zA-Z]+)([0-9]+)$`)
	classicFormula    = regexp.MustCompile(`^[A-Z][a-z]+[0-9]+[^a-zA-Z0-9]+$`)
)

// Compute projects crack times for an assessed password. A password
// flagged common is assumed already known to attackers and
// short-circuits to near-zero estimates under every attack model.
func Compute(a *analyzer.Assessment, password string) *Estimate {
	if a.IsCommon {
		return &Estimate{
			OnlineSeconds:    1e-4,
			OfflineSeconds:   1e-6,
			OptimizedSeconds: 1e-8,
		}
	}

	scoreRatio := float64(a.Score) / 100
	lengthFactor := 1.0
	if a.Length > 20 {
		lengthFactor = 0.8
	}

	effective := a.AdjustedEntropyBits * (0.7 + 0.3*scoreRatio) * lengthFactor
	if effective > 100 {
		effective = 100
	}
	combinations := math.Pow(2, effective)

	factor := adjustmentFactor(a, password)

	return &Estimate{
		OnlineSeconds:    combinations / RateOnline * factor,
		OfflineSeconds:   combinations / RateOffline * factor,
		OptimizedSeconds: combinations / RateOptimized * factor,
	}
}

// adjustmentFactor is the multiplicative discount applied to the
// theoretical combination count to reflect known weakening patterns.
// Floored at 0.05 so a long diverse password is never treated as
// instantly trivial.
func adjustmentFactor(a *analyzer.Assessment, password string) float64 {
	factor := 1.0

	if patterns.HasKind(a.Patterns, patterns.Keyboard) {
		factor *= 0.3
	}
	if patterns.HasKind(a.Patterns, patterns.Sequential) {
		ratio := patterns.SpanOf(a.Patterns, patterns.Sequential)
		factor *= 0.4 + 0.3*(1-ratio)
	}

	if m := lettersThenDigits.FindStringSubmatch(password); m != nil {
		if classifier.IsLikelyCommonPassword(m[1]) {
			factor *= 0.15
		} else {
			factor *= 0.5
		}
	}

	if a.CharClassCount() == 4 {
		if classicFormula.MatchString(password) {
			factor *= 0.6
		} else {
			// A genuinely mixed layout resists rule-based cracking.
			factor *= 1.2
		}
	}

	if a.Length >= 16 {
		factor *= 1.3
	}
	if a.Length <= 8 {
		factor *= 0.5
	}

	return math.Max(0.05, factor)
}

package cracktime

import (
	"math"
	"testing"

	"github.com/blackwell-systems/passgauge/internal/analyzer"
)

func TestComputeCommonShortCircuit(t *testing.T) {
	for _, pw := range []string{"123456", "password", "qwerty12"} {
		a := analyzer.Assess(pw)
		if !a.IsCommon {
			t.Fatalf("fixture %q expected to be common", pw)
		}
		est := Compute(a, pw)
		for name, seconds := range map[string]float64{
			"online":    est.OnlineSeconds,
			"offline":   est.OfflineSeconds,
			"optimized": est.OptimizedSeconds,
		} {
			if seconds >= 0.01 {
				t.Errorf("%q %s estimate %f, want < 0.01s", pw, name, seconds)
			}
		}
	}
}

func TestComputeRateOrdering(t *testing.T) {
	a := analyzer.Assess("Xk9#mQ2!vL7$")
	est := Compute(a, "Xk9#mQ2!vL7$")
	if !(est.OnlineSeconds > est.OfflineSeconds && est.OfflineSeconds > est.OptimizedSeconds) {
		t.Errorf("expected online > offline > optimized, got %f / %f / %f",
			est.OnlineSeconds, est.OfflineSeconds, est.OptimizedSeconds)
	}
	if est.OptimizedSeconds <= 0 {
		t.Errorf("expected positive estimates, got %f", est.OptimizedSeconds)
	}
}

func TestComputeStrongPasswordResists(t *testing.T) {
	a := analyzer.Assess("Xk9#mQ2!vL7$")
	est := Compute(a, "Xk9#mQ2!vL7$")
	// 12 chars of a 95-char pool should survive offline attack for years.
	if est.OfflineSeconds < float64(secondsPerYear) {
		t.Errorf("expected offline estimate beyond a year, got %f seconds", est.OfflineSeconds)
	}
}

func TestAdjustmentFactorFloor(t *testing.T) {
	// Stack every discount: keyboard + sequential + letters-then-digits
	// with a common letter part cannot push the factor below 0.05.
	a := analyzer.Assess("qwerty123456")
	if got := adjustmentFactor(a, "qwerty123456"); got < 0.05 {
		t.Errorf("adjustment factor %f below the 0.05 floor", got)
	}
}

func TestAdjustmentFactorMixedReward(t *testing.T) {
	// Four classes in a non-formulaic layout earn the 1.2 multiplier.
	mixed := analyzer.Assess("xK9#mw2!vLq7")
	formulaic := analyzer.Assess("Summer2024!!")

	mixedFactor := adjustmentFactor(mixed, "xK9#mw2!vLq7")
	formulaFactor := adjustmentFactor(formulaic, "Summer2024!!")
	if mixedFactor <= formulaFactor {
		t.Errorf("mixed layout factor %f should exceed formula factor %f",
			mixedFactor, formulaFactor)
	}
}

func TestComputeLongPasswordFactor(t *testing.T) {
	short := analyzer.Assess("xK9#mw2!")
	long := analyzer.Assess("xK9#mw2!vLq7pT4&")

	shortFactor := adjustmentFactor(short, "xK9#mw2!")
	longFactor := adjustmentFactor(long, "xK9#mw2!vLq7pT4&")
	if longFactor <= shortFactor {
		t.Errorf("length 16 factor %f should exceed length 8 factor %f",
			longFactor, shortFactor)
	}
}

func TestFormatSeconds(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{math.NaN(), "virtually forever"},
		{math.Inf(1), "virtually forever"},
		{0.0005, "instantly"},
		{0.5, "less than a second"},
		{1, "1 second"},
		{45, "45 seconds"},
		{120, "2 minutes"},
		{7200, "2 hours"},
		{172800, "2 days"},
		{1209600, "2 weeks"},
		{5259492, "2 months"},
		{secondsPerYear, "1 year"},
		{3 * secondsPerYear, "3 years"},
		{123 * secondsPerYear, "120 years"},
		{1840 * secondsPerYear, "1,800 years"},
		{25000 * float64(secondsPerYear), "25K years"},
		{2e6 * float64(secondsPerYear), "1M+ years"},
	}

	for _, tc := range cases {
		if got := FormatSeconds(tc.seconds); got != tc.want {
			t.Errorf("FormatSeconds(%v) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestEstimateDeterministic(t *testing.T) {
	a := analyzer.Assess("zk7vmwrthq")
	x := Compute(a, "zk7vmwrthq")
	y := Compute(a, "zk7vmwrthq")
	if *x != *y {
		t.Errorf("estimates differ: %+v vs %+v", x, y)
	}
}

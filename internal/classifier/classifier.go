// Package classifier decides whether a word or whole password should be
// treated as "common" using exact and fuzzy rules over the reference
// tables. Word classification is graded, not boolean: the scorer consumes
// the confidence weight as a proportional penalty multiplier.
package classifier

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/blackwell-systems/passgauge/internal/refdata"
)

// WordConfidence is how strongly a word resembles a common dictionary
// word. The numeric weight is part of the scoring contract; collapsing
// this to a boolean changes scores.
type WordConfidence int

const (
	// ConfidenceNone means the word shows no sign of being common.
	ConfidenceNone WordConfidence = iota
	// ConfidenceLow marks medium-length words that missed every table.
	ConfidenceLow
	// ConfidenceHigh marks short words, which are likely common even
	// when absent from the tables.
	ConfidenceHigh
	// ConfidenceExact means the word occurred in a reference table.
	ConfidenceExact
)

// Weight returns the penalty multiplier associated with the confidence.
func (c WordConfidence) Weight() float64 {
	switch c {
	case ConfidenceExact:
		return 1.0
	case ConfidenceHigh:
		return 0.7
	case ConfidenceLow:
		return 0.4
	default:
		return 0
	}
}

func (c WordConfidence) String() string {
	switch c {
	case ConfidenceExact:
		return "exact"
	case ConfidenceHigh:
		return "high"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// ClassifyWord grades how likely a word is to be a common dictionary
// word. Words shorter than 3 characters are never graded common; exact
// table hits (any category, the uncategorized word list, or a known weak
// prefix) are definitive; everything else is graded by length alone.
func ClassifyWord(word string) WordConfidence {
	if len([]rune(word)) < 3 {
		return ConfidenceNone
	}

	lower := strings.ToLower(word)
	if _, ok := refdata.WordCategory(lower); ok {
		return ConfidenceExact
	}
	if refdata.IsOtherCommonWord(lower) {
		return ConfidenceExact
	}
	if refdata.HasKnownPrefix(lower) {
		return ConfidenceExact
	}

	switch n := len([]rune(lower)); {
	case n <= 5:
		return ConfidenceHigh
	case n >= 8:
		return ConfidenceNone
	default:
		return ConfidenceLow
	}
}

var (
	yearPattern       = regexp.MustCompile(`^(19|20)\d{2}$`)
	leetPatterns      = buildLeetPatterns()
	wordDigitsPattern = regexp.MustCompile(`^([a-zA-Z]+)(\d{1,4})$`)
)

// buildLeetPatterns compiles a small regex family approximating common
// leet-speak spellings of "password", "admin", "test" and "letmein",
// with optional trailing digits or bangs.
func buildLeetPatterns() []*regexp.Regexp {
	raw := []string{
		`^p[a@4]s{1,2}w[o0]rd[0-9!]*$`,
		`^[a@4]dm[i1!]n[0-9!]*$`,
		`^t[e3]st[0-9!]*$`,
		`^l[e3]tm[e3][i1]n[0-9!]*$`,
	}
	compiled := make([]*regexp.Regexp, 0, len(raw))
	for _, r := range raw {
		compiled = append(compiled, regexp.MustCompile(`(?i)`+r))
	}
	return compiled
}

// IsLikelyCommonPassword reports whether the password matches any of the
// common-password rules. All comparisons are case-insensitive. The rules
// are deliberately exact-match-biased: prefix+suffix and word+suffix
// checks require the whole password to match, so arbitrary text that
// merely contains a short common substring is not flagged.
func IsLikelyCommonPassword(password string) bool {
	if password == "" {
		return false
	}
	lower := strings.ToLower(password)
	length := len([]rune(lower))

	// Rule 1: exact common-password hit.
	if refdata.IsCommonPassword(lower) {
		return true
	}

	// Rule 2: prefix+suffix concatenation.
	for _, prefix := range refdata.Prefixes() {
		for _, suffix := range refdata.Suffixes() {
			if lower == prefix+suffix {
				return true
			}
		}
	}

	// Rule 3: dictionary word + suffix, across all categories.
	for _, suffix := range refdata.Suffixes() {
		if word, found := strings.CutSuffix(lower, suffix); found {
			if _, ok := refdata.WordCategory(word); ok {
				return true
			}
		}
	}

	// Rule 4: a known password with a trailing bang or leading capital.
	if trimmed, found := strings.CutSuffix(lower, "!"); found && refdata.IsCommonPassword(trimmed) {
		return true
	}

	// Rule 5: a keyboard run of 4+ covering at least half the password.
	if kb := refdata.LongestKeyboardMatch(lower); len(kb) >= 4 && len(kb)*2 >= length {
		return true
	}

	// Rule 6: a sequential run covering at least half the password.
	if seq := refdata.LongestSequentialMatch(lower); len(seq) > 0 && len(seq)*2 >= length {
		return true
	}

	// Rule 7: a repeat run of 3+ covering at least half the password.
	if run := refdata.LongestRepeatRun(lower); run >= 3 && run*2 >= length {
		return true
	}

	// Rule 8: a bare 4-digit year.
	if yearPattern.MatchString(lower) {
		return true
	}

	// Rule 9: leet-speak spellings of the classic weak words.
	for _, re := range leetPatterns {
		if re.MatchString(lower) {
			return true
		}
	}

	// Rule 10: short single-class passwords.
	if length < 8 && (allLetters(lower) || allDigits(lower)) {
		return true
	}

	// Rule 11: high-risk word followed by up to four digits.
	if m := wordDigitsPattern.FindStringSubmatch(lower); m != nil {
		if refdata.IsHighRiskWord(m[1]) {
			return true
		}
	}

	return false
}

func allLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(s) > 0
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

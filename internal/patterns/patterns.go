// Package patterns finds structural weaknesses in passwords: keyboard and
// sequential runs, repeats, leet-speak, word+number formulas, dates, and
// single-class passwords. Every finding carries the fraction of the
// password it covers and the score adjustment it earns.
package patterns

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/blackwell-systems/passgauge/internal/classifier"
	"github.com/blackwell-systems/passgauge/internal/refdata"
)

// Kind identifies the category of a detected pattern.
type Kind int

const (
	Keyboard Kind = iota
	Sequential
	Repeating
	Leet
	WordPlusNumber
	WordPlusSymbolNumber
	Date
	Alternating
	SingleCharsetType
)

func (k Kind) String() string {
	switch k {
	case Keyboard:
		return "keyboard"
	case Sequential:
		return "sequential"
	case Repeating:
		return "repeating"
	case Leet:
		return "leet"
	case WordPlusNumber:
		return "word+number"
	case WordPlusSymbolNumber:
		return "word+symbol+number"
	case Date:
		return "date"
	case Alternating:
		return "alternating"
	case SingleCharsetType:
		return "single-charset"
	default:
		return "unknown"
	}
}

// Match is one detected pattern. Adjustment is the score delta the match
// earns: negative for penalties, positive for the uncommon-word reward.
type Match struct {
	Kind        Kind
	Description string
	SpanRatio   float64
	Adjustment  float64
}

var (
	alternatingLD = regexp.MustCompile(`^(?:[a-zA-Z][0-9]){2,}$`)
	alternatingDL = regexp.MustCompile(`^(?:[0-9][a-zA-Z]){2,}$`)
	leetHit       = regexp.MustCompile(`(?i)(p[a@4]s{1,2}w[o0]rd|[a@4]dm[i1!]n|t[e3]st[0-9!]|l[e3]tm[e3][i1]n)`)
	wordSymNum    = regexp.MustCompile(`^[a-zA-Z]+[^a-zA-Z0-9]+[0-9]+$`)
	wordNum       = regexp.MustCompile(`^([a-zA-Z]+)([0-9]+)$`)
	bareYear      = regexp.MustCompile(`^(19|20)\d{2}$`)
	datePattern   = regexp.MustCompile(`^\d{1,2}[-/._]\d{1,2}[-/._](\d{4}|\d{2})$`)
)

// Detect returns every pattern found in the password, in a fixed
// detection order so identical inputs always yield identical output.
func Detect(password string) []Match {
	matches := []Match{}
	runes := []rune(password)
	if len(runes) == 0 {
		return matches
	}
	length := float64(len(runes))
	lower := strings.ToLower(password)

	if kb := refdata.LongestKeyboardMatch(lower); kb != "" {
		ratio := float64(len(kb)) / length
		matches = append(matches, Match{
			Kind:        Keyboard,
			Description: fmt.Sprintf("keyboard pattern %q", kb),
			SpanRatio:   ratio,
			Adjustment:  -25 * ratio,
		})
	}

	if seq := refdata.LongestSequentialMatch(lower); seq != "" {
		ratio := float64(len(seq)) / length
		matches = append(matches, Match{
			Kind:        Sequential,
			Description: fmt.Sprintf("sequential run %q", seq),
			SpanRatio:   ratio,
			Adjustment:  -20 * ratio,
		})
	}

	if run := refdata.LongestRepeatRun(password); run >= 3 {
		matches = append(matches, Match{
			Kind:        Repeating,
			Description: fmt.Sprintf("character repeated %d times", run),
			SpanRatio:   float64(run) / length,
			Adjustment:  -15,
		})
	}

	if alternatingLD.MatchString(password) || alternatingDL.MatchString(password) {
		matches = append(matches, Match{
			Kind:        Alternating,
			Description: "alternating letter-digit pattern",
			SpanRatio:   1,
			Adjustment:  -15,
		})
	}

	if leetHit.MatchString(lower) {
		matches = append(matches, Match{
			Kind:        Leet,
			Description: "leet-speak spelling of a common word",
			SpanRatio:   1,
			Adjustment:  -10,
		})
	}

	if wordSymNum.MatchString(password) {
		matches = append(matches, Match{
			Kind:        WordPlusSymbolNumber,
			Description: "word + symbol + number formula",
			SpanRatio:   1,
			Adjustment:  -15,
		})
	}

	if m := wordNum.FindStringSubmatch(password); m != nil {
		matches = append(matches, wordNumberMatch(m[1], m[2], len(runes)))
	}

	if bareYear.MatchString(password) || datePattern.MatchString(password) {
		matches = append(matches, Match{
			Kind:        Date,
			Description: "date or year",
			SpanRatio:   1,
			Adjustment:  -20,
		})
	}

	if sc := singleCharset(password); sc != nil {
		matches = append(matches, *sc)
	}

	return matches
}

// wordNumberMatch applies the word+number sub-policy: hard penalties for
// high-risk and dictionary words, graded penalties for fuzzy matches, and
// a reward (with digit-suffix analysis) for genuinely uncommon words.
func wordNumberMatch(word, digits string, passwordLen int) Match {
	lower := strings.ToLower(word)
	ratio := 1.0

	if refdata.IsHighRiskWord(lower) {
		return Match{
			Kind:        WordPlusNumber,
			Description: fmt.Sprintf("high-risk word %q + number", lower),
			SpanRatio:   ratio,
			Adjustment:  -25,
		}
	}

	if category, ok := refdata.WordCategory(lower); ok {
		return Match{
			Kind:        WordPlusNumber,
			Description: fmt.Sprintf("%s word %q + number", category, lower),
			SpanRatio:   ratio,
			Adjustment:  -25,
		}
	}

	switch confidence := classifier.ClassifyWord(word); confidence {
	case classifier.ConfidenceExact:
		return Match{
			Kind:        WordPlusNumber,
			Description: fmt.Sprintf("common word %q + number", lower),
			SpanRatio:   ratio,
			Adjustment:  -20,
		}
	case classifier.ConfidenceHigh, classifier.ConfidenceLow:
		return Match{
			Kind:        WordPlusNumber,
			Description: fmt.Sprintf("possibly common word %q + number", lower),
			SpanRatio:   ratio,
			Adjustment:  -10 * confidence.Weight(),
		}
	}

	// Uncommon word: reward the base shape, then inspect the digit
	// suffix. A sequential run is penalized proportionally but offset by
	// a small length credit; repeated digits take a flat penalty; longer
	// non-sequential suffixes earn a small bonus.
	adjustment := 5.0
	description := fmt.Sprintf("uncommon word %q + number", lower)

	if run := longestMonotonicDigitRun(digits); run >= 3 {
		penalty := (float64(run) / float64(passwordLen)) * 20
		if penalty > 10 {
			penalty = 10
		}
		credit := len(digits)
		if credit > 3 {
			credit = 3
		}
		penalty -= float64(credit)
		if penalty > 0 {
			adjustment -= penalty
		}
		description += ", sequential digit suffix"
	} else if repeatedDigits(digits) {
		adjustment -= 5
		description += ", repeated digit suffix"
	} else if len(digits) >= 3 {
		bonus := len(digits) - 2
		if bonus > 5 {
			bonus = 5
		}
		adjustment += float64(bonus)
	}

	return Match{
		Kind:        WordPlusNumber,
		Description: description,
		SpanRatio:   ratio,
		Adjustment:  adjustment,
	}
}

// longestMonotonicDigitRun returns the length of the longest strictly
// ascending or descending run of consecutive digits (e.g. "123", "987").
func longestMonotonicDigitRun(digits string) int {
	if len(digits) < 2 {
		return 0
	}
	best := 1
	asc, desc := 1, 1
	for i := 1; i < len(digits); i++ {
		if digits[i] == digits[i-1]+1 {
			asc++
		} else {
			asc = 1
		}
		if digits[i] == digits[i-1]-1 {
			desc++
		} else {
			desc = 1
		}
		if asc > best {
			best = asc
		}
		if desc > best {
			best = desc
		}
	}
	return best
}

// repeatedDigits reports whether the suffix is a run of one repeated
// digit of length >= 3 (e.g. "111", "0000").
func repeatedDigits(digits string) bool {
	if len(digits) < 3 {
		return false
	}
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}

// singleCharset flags passwords drawn from a single character class.
// Letters-only costs 20 points, digits-only 30.
func singleCharset(password string) *Match {
	letters, digitsOnly := true, true
	for _, r := range password {
		if !unicode.IsLetter(r) {
			letters = false
		}
		if !unicode.IsDigit(r) {
			digitsOnly = false
		}
	}

	switch {
	case letters:
		return &Match{
			Kind:        SingleCharsetType,
			Description: "letters only",
			SpanRatio:   1,
			Adjustment:  -20,
		}
	case digitsOnly:
		return &Match{
			Kind:        SingleCharsetType,
			Description: "digits only",
			SpanRatio:   1,
			Adjustment:  -30,
		}
	default:
		return nil
	}
}

// HasKind reports whether any match in the list is of the given kind.
func HasKind(matches []Match, kind Kind) bool {
	for _, m := range matches {
		if m.Kind == kind {
			return true
		}
	}
	return false
}

// SpanOf returns the span ratio of the first match of the given kind,
// or 0 when the kind is absent.
func SpanOf(matches []Match, kind Kind) float64 {
	for _, m := range matches {
		if m.Kind == kind {
			return m.SpanRatio
		}
	}
	return 0
}

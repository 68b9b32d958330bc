// Package refdata holds the static reference tables used by the strength
// heuristics: categorized dictionary words, a common-password list, keyboard
// and sequential patterns, and prefix/suffix fragments.
//
// All tables are built once at package initialization and never mutated
// afterwards, so they are safe for concurrent reads from parallel
// per-password analysis.
package refdata

import (
	_ "embed"
	"sort"
	"strings"
)

//go:embed data/common_passwords.txt
var commonPasswordsRaw string

// commonPasswordSet is the lowercased common-password lookup set.
var commonPasswordSet map[string]struct{}

// commonPasswordList preserves list order for callers that iterate.
var commonPasswordList []string

// wordCategories maps a category name to its dictionary words. Words are
// stored lowercased; lookups must lowercase first.
var wordCategories = map[string][]string{
	"name": {
		"michael", "jennifer", "jessica", "ashley", "daniel", "matthew",
		"andrew", "joshua", "david", "james", "robert", "thomas", "george",
		"charlie", "amanda", "nicole", "michelle", "taylor", "jordan",
		"austin", "tyler", "maria", "sarah", "laura", "kevin",
	},
	"sport": {
		"football", "baseball", "soccer", "hockey", "tennis", "golf",
		"basketball", "rugby", "cricket", "boxing", "racing",
	},
	"animal": {
		"monkey", "dragon", "tiger", "eagle", "falcon", "panther", "shark",
		"wolf", "horse", "dolphin", "cobra", "phoenix",
	},
	"place": {
		"dallas", "austin", "montana", "moscow", "london", "paris",
		"berlin", "tokyo", "chicago", "boston", "texas", "america",
	},
	"season": {
		"summer", "winter", "spring", "autumn", "january", "february",
		"march", "april", "june", "july", "august", "september",
		"october", "november", "december", "monday", "friday", "sunday",
	},
	"pop": {
		"superman", "batman", "starwars", "matrix", "pokemon", "gandalf",
		"skywalker", "yankees", "lakers", "ferrari", "mustang", "harley",
	},
}

// categoryIndex maps a dictionary word back to its category name.
var categoryIndex map[string]string

// keyboardPatterns are physical-adjacency runs on a QWERTY layout.
var keyboardPatterns = []string{
	"qwertyuiop", "asdfghjkl", "zxcvbnm",
	"qwerty", "asdfgh", "zxcvbn",
	"qwert", "asdf", "zxcv", "wasd",
	"1qaz", "2wsx", "3edc", "qazwsx", "1qaz2wsx",
	"poiuy", "lkjhg", "mnbvc",
	"qweasd", "123qwe",
}

// sequentialBases are the alphabets that sequential runs are drawn from.
// The candidate table below is generated from their substrings.
var sequentialBases = []string{
	"abcdefghijklmnopqrstuvwxyz",
	"zyxwvutsrqponmlkjihgfedcba",
	"0123456789",
	"9876543210",
}

// sequentialPatterns holds every substring of the bases between 3 and 10
// characters, ordered longest first so a linear scan finds the longest
// match before any shorter one.
var sequentialPatterns []string

// commonPrefixes are fragments that frequently start weak passwords.
var commonPrefixes = []string{
	"pass", "admin", "user", "login", "welcome", "qwerty", "secret",
	"root", "super", "letme",
}

// commonSuffixes are fragments that frequently end weak passwords.
var commonSuffixes = []string{
	"123", "1234", "12345", "123456", "1", "12", "01", "007", "69",
	"666", "2023", "2024", "2025", "!", "!!", "1!", "123!",
}

// otherCommonWords are weak standalone words that fit no category.
var otherCommonWords = []string{
	"love", "god", "money", "secret", "shadow", "master", "sunshine",
	"princess", "trustno1", "letmein", "freedom", "whatever", "ninja",
	"killer", "hunter", "buster", "pepper", "cheese", "thunder",
	"ranger", "biteme", "access", "ginger", "maggie", "chelsea",
	"hannah", "iloveyou", "computer", "internet", "samsung",
}

// highRiskWords is the short fixed list consulted by the word+number
// heuristic; a password built on one of these is penalized hardest.
var highRiskWords = []string{
	"password", "admin", "user", "login", "welcome", "manager",
	"secure", "security", "test", "server", "database", "account",
}

var highRiskSet map[string]struct{}

func init() {
	lines := strings.Split(commonPasswordsRaw, "\n")
	commonPasswordSet = make(map[string]struct{}, len(lines))
	for _, line := range lines {
		pw := strings.ToLower(strings.TrimSpace(line))
		if pw == "" {
			continue
		}
		if _, ok := commonPasswordSet[pw]; ok {
			continue
		}
		commonPasswordSet[pw] = struct{}{}
		commonPasswordList = append(commonPasswordList, pw)
	}

	categoryIndex = make(map[string]string)
	for category, words := range wordCategories {
		for _, w := range words {
			categoryIndex[w] = category
		}
	}

	seen := make(map[string]struct{})
	for _, base := range sequentialBases {
		runes := []rune(base)
		for length := 3; length <= 10 && length <= len(runes); length++ {
			for i := 0; i+length <= len(runes); i++ {
				sub := string(runes[i : i+length])
				if _, ok := seen[sub]; !ok {
					seen[sub] = struct{}{}
					sequentialPatterns = append(sequentialPatterns, sub)
				}
			}
		}
	}
	sort.SliceStable(sequentialPatterns, func(i, j int) bool {
		return len(sequentialPatterns[i]) > len(sequentialPatterns[j])
	})

	highRiskSet = make(map[string]struct{}, len(highRiskWords))
	for _, w := range highRiskWords {
		highRiskSet[w] = struct{}{}
	}
}

// IsCommonPassword reports whether the exact password appears in the
// embedded common-password list. Comparison is case-insensitive.
func IsCommonPassword(password string) bool {
	_, ok := commonPasswordSet[strings.ToLower(password)]
	return ok
}

// CommonPasswords returns the common-password list in file order.
// Callers must not modify the returned slice.
func CommonPasswords() []string {
	return commonPasswordList
}

// WordCategory returns the category a dictionary word belongs to.
// The word must already be lowercased.
func WordCategory(word string) (string, bool) {
	category, ok := categoryIndex[word]
	return category, ok
}

// CategoryWords returns all words across every dictionary category.
// Callers must not modify the returned map.
func CategoryWords() map[string]string {
	return categoryIndex
}

// IsOtherCommonWord reports whether the lowercased word is in the
// uncategorized common-word list.
func IsOtherCommonWord(word string) bool {
	for _, w := range otherCommonWords {
		if w == word {
			return true
		}
	}
	return false
}

// HasKnownPrefix reports whether the lowercased word starts with one of
// the known weak prefix fragments.
func HasKnownPrefix(word string) bool {
	for _, p := range commonPrefixes {
		if strings.HasPrefix(word, p) {
			return true
		}
	}
	return false
}

// Prefixes returns the weak prefix fragments. Read-only.
func Prefixes() []string {
	return commonPrefixes
}

// Suffixes returns the weak suffix fragments. Read-only.
func Suffixes() []string {
	return commonSuffixes
}

// IsHighRiskWord reports whether the lowercased word is on the fixed
// high-risk list used by the word+number heuristic.
func IsHighRiskWord(word string) bool {
	_, ok := highRiskSet[word]
	return ok
}

// LongestKeyboardMatch returns the longest keyboard-adjacency substring
// found in the password, or "" if none matches. Matching is
// case-insensitive; longest table entry wins.
func LongestKeyboardMatch(password string) string {
	lower := strings.ToLower(password)
	best := ""
	for _, pattern := range keyboardPatterns {
		if len(pattern) > len(best) && strings.Contains(lower, pattern) {
			best = pattern
		}
	}
	return best
}

// LongestSequentialMatch returns the longest sequential run (ascending or
// descending alphabetic or numeric) found in the password, or "" if none
// matches. The candidate table is ordered longest first, so the first hit
// is the longest possible match.
func LongestSequentialMatch(password string) string {
	lower := strings.ToLower(password)
	for _, pattern := range sequentialPatterns {
		if strings.Contains(lower, pattern) {
			return pattern
		}
	}
	return ""
}

// LongestRepeatRun returns the length of the longest run of a single
// repeated character in the password.
func LongestRepeatRun(password string) int {
	runes := []rune(password)
	best, run := 0, 0
	for i := range runes {
		if i > 0 && runes[i] == runes[i-1] {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}
	return best
}

package patterns

import (
	"math"
	"testing"
)

func findKind(matches []Match, kind Kind) *Match {
	for i := range matches {
		if matches[i].Kind == kind {
			return &matches[i]
		}
	}
	return nil
}

func TestDetectEmptyPassword(t *testing.T) {
	matches := Detect("")
	if matches == nil {
		t.Fatal("Detect must return an empty slice, not nil")
	}
	if len(matches) != 0 {
		t.Fatalf("expected no matches for empty password, got %d", len(matches))
	}
}

func TestDetectKeyboard(t *testing.T) {
	matches := Detect("qwertyxx")
	m := findKind(matches, Keyboard)
	if m == nil {
		t.Fatal("expected a keyboard match")
	}
	if math.Abs(m.SpanRatio-0.75) > 1e-9 {
		t.Errorf("expected span ratio 0.75, got %f", m.SpanRatio)
	}
	if math.Abs(m.Adjustment-(-18.75)) > 1e-9 {
		t.Errorf("expected adjustment -18.75, got %f", m.Adjustment)
	}
}

func TestDetectSequential(t *testing.T) {
	matches := Detect("abc12345")
	m := findKind(matches, Sequential)
	if m == nil {
		t.Fatal("expected a sequential match")
	}
	// Longest run is "12345" (5 of 8 characters).
	if math.Abs(m.SpanRatio-0.625) > 1e-9 {
		t.Errorf("expected span ratio 0.625, got %f", m.SpanRatio)
	}
	if math.Abs(m.Adjustment-(-12.5)) > 1e-9 {
		t.Errorf("expected adjustment -12.5, got %f", m.Adjustment)
	}
}

func TestDetectRepeating(t *testing.T) {
	matches := Detect("aaak7#Q2")
	m := findKind(matches, Repeating)
	if m == nil {
		t.Fatal("expected a repeating match")
	}
	if m.Adjustment != -15 {
		t.Errorf("expected flat -15, got %f", m.Adjustment)
	}

	if findKind(Detect("aak7#Q2w"), Repeating) != nil {
		t.Error("runs shorter than 3 must not match")
	}
}

func TestDetectAlternating(t *testing.T) {
	for _, pw := range []string{"a1b2c3", "1a2b3c4d"} {
		if findKind(Detect(pw), Alternating) == nil {
			t.Errorf("expected alternating match for %q", pw)
		}
	}
	for _, pw := range []string{"ab12cd", "a1b2c"} {
		if findKind(Detect(pw), Alternating) != nil {
			t.Errorf("expected no alternating match for %q", pw)
		}
	}
}

func TestDetectLeet(t *testing.T) {
	m := findKind(Detect("myp4ssw0rd"), Leet)
	if m == nil {
		t.Fatal("expected a leet match")
	}
	if m.Adjustment != -10 {
		t.Errorf("expected -10, got %f", m.Adjustment)
	}
}

func TestDetectWordSymbolNumber(t *testing.T) {
	m := findKind(Detect("horse#42"), WordPlusSymbolNumber)
	if m == nil {
		t.Fatal("expected a word+symbol+number match")
	}
	if m.Adjustment != -15 {
		t.Errorf("expected -15, got %f", m.Adjustment)
	}
}

func TestDetectDate(t *testing.T) {
	for _, pw := range []string{"1999", "2024", "12/25/1999", "1-1-99", "3.14.2020"} {
		if findKind(Detect(pw), Date) == nil {
			t.Errorf("expected date match for %q", pw)
		}
	}
	if findKind(Detect("31415926"), Date) != nil {
		t.Error("expected no date match for 31415926")
	}
}

func TestDetectSingleCharset(t *testing.T) {
	letters := findKind(Detect("troubadour"), SingleCharsetType)
	if letters == nil || letters.Adjustment != -20 {
		t.Fatalf("expected letters-only match at -20, got %+v", letters)
	}

	digits := findKind(Detect("31415926"), SingleCharsetType)
	if digits == nil || digits.Adjustment != -30 {
		t.Fatalf("expected digits-only match at -30, got %+v", digits)
	}

	if findKind(Detect("mixed123"), SingleCharsetType) != nil {
		t.Error("mixed-class password must not match")
	}
}

func TestWordNumberHighRisk(t *testing.T) {
	m := findKind(Detect("password99"), WordPlusNumber)
	if m == nil {
		t.Fatal("expected a word+number match")
	}
	if m.Adjustment != -25 {
		t.Errorf("expected -25 for a high-risk word, got %f", m.Adjustment)
	}
}

func TestWordNumberDictionaryCategory(t *testing.T) {
	m := findKind(Detect("football77"), WordPlusNumber)
	if m == nil {
		t.Fatal("expected a word+number match")
	}
	if m.Adjustment != -25 {
		t.Errorf("expected -25 for a dictionary word, got %f", m.Adjustment)
	}
	if m.Description != `sport word "football" + number` {
		t.Errorf("expected category-named description, got %q", m.Description)
	}
}

func TestWordNumberGradedConfidence(t *testing.T) {
	// "abc" is short: confidence 0.7 -> -7.
	m := findKind(Detect("abc98"), WordPlusNumber)
	if m == nil {
		t.Fatal("expected a word+number match")
	}
	if math.Abs(m.Adjustment-(-7)) > 1e-9 {
		t.Errorf("expected -7 for a likely-common short word, got %f", m.Adjustment)
	}

	// "zvqkpm" is 6 letters and unknown: confidence 0.4 -> -4.
	m = findKind(Detect("zvqkpm98"), WordPlusNumber)
	if m == nil {
		t.Fatal("expected a word+number match")
	}
	if math.Abs(m.Adjustment-(-4)) > 1e-9 {
		t.Errorf("expected -4 for a medium unknown word, got %f", m.Adjustment)
	}
}

func TestWordNumberUncommonRewarded(t *testing.T) {
	// "zvqkpmxw" is uncommon; "947" is a non-sequential 3-digit suffix:
	// +5 base +1 length bonus.
	m := findKind(Detect("zvqkpmxw947"), WordPlusNumber)
	if m == nil {
		t.Fatal("expected a word+number match")
	}
	if math.Abs(m.Adjustment-6) > 1e-9 {
		t.Errorf("expected +6, got %f", m.Adjustment)
	}
}

func TestWordNumberUncommonSequentialSuffix(t *testing.T) {
	// digits "123456": run 6 of a 14-char password -> penalty
	// 6/14*20 = 8.571..., offset by min(6,3)=3 -> 5.571... below the +5
	// base reward.
	m := findKind(Detect("zvqkpmxw123456"), WordPlusNumber)
	if m == nil {
		t.Fatal("expected a word+number match")
	}
	want := 5.0 - (6.0/14.0*20.0 - 3.0)
	if math.Abs(m.Adjustment-want) > 1e-9 {
		t.Errorf("expected %f, got %f", want, m.Adjustment)
	}
}

func TestWordNumberUncommonRepeatedSuffix(t *testing.T) {
	// "111" takes the flat -5, cancelling the +5 base reward.
	m := findKind(Detect("zvqkpmxw111"), WordPlusNumber)
	if m == nil {
		t.Fatal("expected a word+number match")
	}
	if math.Abs(m.Adjustment-0) > 1e-9 {
		t.Errorf("expected 0, got %f", m.Adjustment)
	}
}

func TestLongestMonotonicDigitRun(t *testing.T) {
	cases := []struct {
		digits string
		want   int
	}{
		{"", 0},
		{"7", 0},
		{"123", 3},
		{"987", 3},
		{"111", 1},
		{"94712345", 5},
		{"13579", 1},
	}

	for _, tc := range cases {
		if got := longestMonotonicDigitRun(tc.digits); got != tc.want {
			t.Errorf("longestMonotonicDigitRun(%q) = %d, want %d", tc.digits, got, tc.want)
		}
	}
}

func TestDetectDeterministic(t *testing.T) {
	a := Detect("Tr0ub4dor&3")
	b := Detect("Tr0ub4dor&3")
	if len(a) != len(b) {
		t.Fatalf("non-deterministic match count: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("match %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

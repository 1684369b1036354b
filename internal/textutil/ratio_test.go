package textutil

import (
	"math"
	"testing"
)

func TestRatioIdentical(t *testing.T) {
	inputs := []string{
		"a",
		"mapping flood risk in coastal cities",
		"sediment transport under extreme discharge",
	}
	for _, input := range inputs {
		if got := Ratio(input, input); got != 1.0 {
			t.Errorf("Ratio(%q, same) = %v, want 1.0", input, got)
		}
	}
}

func TestRatioBothEmpty(t *testing.T) {
	if got := Ratio("", ""); got != 1.0 {
		t.Errorf("Ratio(empty, empty) = %v, want 1.0 by convention", got)
	}
}

func TestRatioOneEmpty(t *testing.T) {
	if got := Ratio("abc", ""); got != 0 {
		t.Errorf("Ratio(abc, empty) = %v, want 0", got)
	}
	if got := Ratio("", "abc"); got != 0 {
		t.Errorf("Ratio(empty, abc) = %v, want 0", got)
	}
}

func TestRatioKnownValue(t *testing.T) {
	// Longest common run "bcd" (3 runes), no further matches in the
	// remaining fragments: 2*3/8 = 0.75.
	got := Ratio("abcd", "bcde")
	if math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Ratio(abcd, bcde) = %v, want 0.75", got)
	}
}

func TestRatioDisjoint(t *testing.T) {
	if got := Ratio("aaaa", "bbbb"); got != 0 {
		t.Errorf("Ratio(disjoint) = %v, want 0", got)
	}
}

func TestRatioSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"mapping flood risk in coastal cities", "mapping flood risk coastal cities worldwide"},
		{"abcdef", "cdefab"},
		{"short", "a much longer string entirely"},
	}
	for _, pair := range pairs {
		ab := Ratio(pair[0], pair[1])
		ba := Ratio(pair[1], pair[0])
		if ab != ba {
			t.Errorf("Ratio(%q, %q) not symmetric: %v vs %v", pair[0], pair[1], ab, ba)
		}
	}
}

func TestRatioBounded(t *testing.T) {
	pairs := [][2]string{
		{"x", "y"},
		{"overlap here", "some overlap here too"},
		{"", "nonempty"},
		{"aaaa", "aa"},
	}
	for _, pair := range pairs {
		got := Ratio(pair[0], pair[1])
		if got < 0 || got > 1 {
			t.Errorf("Ratio(%q, %q) = %v, out of [0,1]", pair[0], pair[1], got)
		}
	}
}

func TestRatioSubstantialOverlap(t *testing.T) {
	// Shared prefix drives the score up without reaching 1.
	got := Ratio(
		"mapping flood risk in coastal cities",
		"mapping flood risk coastal cities worldwide",
	)
	if got <= 0.5 || got >= 1.0 {
		t.Errorf("Ratio(overlapping titles) = %v, want in (0.5, 1.0)", got)
	}
}

func TestRatioNonOverlappingBlocks(t *testing.T) {
	// "ab" matches at the start and "ef" after the longest run "cd" is
	// claimed; recursion must count all three blocks exactly once.
	got := Ratio("abXcdYef", "abZcdWef")
	want := 2.0 * 6.0 / 16.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Ratio(blocked) = %v, want %v", got, want)
	}
}

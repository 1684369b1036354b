package match_test

import (
	"math"
	"testing"

	"bibsync/internal/match"
	"bibsync/internal/record"
)

func rec(title, year string) record.Record {
	return record.New(record.Fields{Title: title, Year: year})
}

func TestScoreIdenticalTitles(t *testing.T) {
	a := rec("Mapping Flood Risk in Coastal Cities", "2019")
	b := rec("mapping flood risk in coastal cities.", "2019")

	got := match.Score(a, b, match.DefaultYearPenalty)
	if got != 1.0 {
		t.Fatalf("Score = %v, want 1.0 after normalization", got)
	}
}

func TestScoreSymmetric(t *testing.T) {
	a := rec("Sediment Transport in Deltas", "2017")
	b := rec("Sediment transport across deltas", "2018")

	ab := match.Score(a, b, match.DefaultYearPenalty)
	ba := match.Score(b, a, match.DefaultYearPenalty)
	if ab != ba {
		t.Fatalf("Score not symmetric: %v vs %v", ab, ba)
	}
}

func TestScoreBounded(t *testing.T) {
	pairs := [][2]record.Record{
		{rec("alpha", "2000"), rec("omega", "2001")},
		{rec("same title", "1999"), rec("same title", "2005")},
		{rec("", ""), rec("anything", "2020")},
	}
	for _, pair := range pairs {
		got := match.Score(pair[0], pair[1], match.DefaultYearPenalty)
		if got < 0 || got > 1 {
			t.Errorf("Score(%q, %q) = %v, out of [0,1]", pair[0].Title, pair[1].Title, got)
		}
	}
}

func TestScoreYearMismatchPenalty(t *testing.T) {
	same := match.Score(rec("Tidal Dynamics", "2019"), rec("Tidal Dynamics", "2019"), match.DefaultYearPenalty)
	differ := match.Score(rec("Tidal Dynamics", "2019"), rec("Tidal Dynamics", "2020"), match.DefaultYearPenalty)

	if differ >= same {
		t.Fatalf("year mismatch must strictly decrease the score: %v >= %v", differ, same)
	}
	want := same * match.DefaultYearPenalty
	if math.Abs(differ-want) > 1e-9 {
		t.Fatalf("penalized score = %v, want %v", differ, want)
	}
}

func TestScoreMissingYearDisablesPenalty(t *testing.T) {
	base := match.Score(rec("Tidal Dynamics", ""), rec("Tidal Dynamics", "2020"), match.DefaultYearPenalty)
	if base != 1.0 {
		t.Fatalf("Score = %v, want 1.0 when one year is missing", base)
	}
	base = match.Score(rec("Tidal Dynamics", "2019"), rec("Tidal Dynamics", "   "), match.DefaultYearPenalty)
	if base != 1.0 {
		t.Fatalf("Score = %v, want 1.0 when the other year is blank", base)
	}
}

func TestScoreOverlappingTitlesWithYearDrift(t *testing.T) {
	a := rec("Mapping Flood Risk in Coastal Cities", "2019")
	b := rec("Mapping Flood Risk, Coastal Cities Worldwide", "2020")
	sameYear := rec("Mapping Flood Risk, Coastal Cities Worldwide", "2019")

	base := match.Score(a, sameYear, match.DefaultYearPenalty)
	if base <= 0.65 || base >= 0.85 {
		t.Fatalf("base similarity = %v, want moderate overlap in (0.65, 0.85)", base)
	}

	damped := match.Score(a, b, match.DefaultYearPenalty)
	if math.Abs(damped-base*match.DefaultYearPenalty) > 1e-9 {
		t.Fatalf("damped score = %v, want %v", damped, base*match.DefaultYearPenalty)
	}
	if damped >= base {
		t.Fatal("year drift must lower the score")
	}
}

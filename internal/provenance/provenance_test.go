package provenance_test

import (
	"strings"
	"testing"

	"bibsync/internal/provenance"
)

func TestParseYearAndTitle(t *testing.T) {
	text := "Doe, J., & Roe, A. (2019). Mapping flood risk in coastal cities. Journal of Hydrology, 12(3), 45-67."
	citation := provenance.Parse(text)

	if citation.Year.String() != "2019" {
		t.Fatalf("Year = %q, want 2019", citation.Year)
	}
	if citation.Title != "Mapping flood risk in coastal cities" {
		t.Fatalf("Title = %q", citation.Title)
	}
	if citation.Raw != text {
		t.Fatal("Raw must preserve the original text")
	}
}

func TestParseNoYear(t *testing.T) {
	citation := provenance.Parse("An undated manuscript about sediment transport")
	if !citation.Year.IsEmpty() {
		t.Fatalf("Year = %q, want empty", citation.Year)
	}
	if citation.Title != "An undated manuscript about sediment transport" {
		t.Fatalf("Title = %q", citation.Title)
	}
}

func TestParseEmpty(t *testing.T) {
	citation := provenance.Parse("   ")
	if citation.Title != "" || !citation.Year.IsEmpty() {
		t.Fatalf("expected empty citation, got %+v", citation)
	}
}

func TestParseYearWithoutTrailingText(t *testing.T) {
	citation := provenance.Parse("Doe, J. (2020)")
	if citation.Year.String() != "2020" {
		t.Fatalf("Year = %q", citation.Year)
	}
	if citation.Title != "" {
		t.Fatalf("Title = %q, want empty", citation.Title)
	}
}

func TestParseTruncatesLongTitles(t *testing.T) {
	long := strings.Repeat("word ", 40)
	citation := provenance.Parse(long)
	if len([]rune(citation.Title)) > 100 {
		t.Fatalf("Title length = %d, want <= 100", len([]rune(citation.Title)))
	}
}

func TestCitationRecord(t *testing.T) {
	text := "Doe, J. (2018). Estuary morphology and tide gauges. Coastal Engineering."
	rec := provenance.Parse(text).Record()

	if rec.Title != "Estuary morphology and tide gauges" {
		t.Fatalf("Title = %q", rec.Title)
	}
	if rec.NormalizedTitle != "estuary morphology and tide gauges" {
		t.Fatalf("NormalizedTitle = %q", rec.NormalizedTitle)
	}
	if year, ok := rec.Year.Value(); !ok || year != 2018 {
		t.Fatalf("Year = (%d, %v)", year, ok)
	}
	if rec.RawProvenance != text {
		t.Fatal("RawProvenance must carry the original line")
	}
}

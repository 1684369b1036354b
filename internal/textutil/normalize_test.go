package textutil

import "testing"

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercases",
			input: "Mapping Flood Risk in Coastal Cities",
			want:  "mapping flood risk in coastal cities",
		},
		{
			name:  "strips trailing period",
			input: "mapping flood risk in coastal cities.",
			want:  "mapping flood risk in coastal cities",
		},
		{
			name:  "strips mixed punctuation",
			input: `Rivers, Deltas; and Estuaries: A Synthesis!?`,
			want:  "rivers deltas and estuaries a synthesis",
		},
		{
			name:  "strips curly quotes",
			input: "The “Blue” Economy’s Future",
			want:  "the blue economys future",
		},
		{
			name:  "collapses whitespace",
			input: "  spaced\tout \n title  ",
			want:  "spaced out title",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "punctuation only",
			input: ".,;:!?",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeTitle(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeTitle(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeTitleIdempotent(t *testing.T) {
	inputs := []string{
		"Mapping Flood Risk in Coastal Cities",
		`"Quoted" titles; with: punctuation!`,
		"  lots   of   space  ",
		"",
		"already normalized title",
	}
	for _, input := range inputs {
		once := NormalizeTitle(input)
		twice := NormalizeTitle(once)
		if once != twice {
			t.Errorf("NormalizeTitle not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestNormalizeTitlePreservesWordBoundaries(t *testing.T) {
	got := NormalizeTitle("word1. word2, word3")
	if got != "word1 word2 word3" {
		t.Errorf("word boundaries altered: %q", got)
	}
}

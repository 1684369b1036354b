package match

import (
	"strings"

	"bibsync/internal/record"
	"bibsync/internal/textutil"
)

// Score computes the similarity of two records in [0,1]: the sequence
// ratio of their normalized titles, damped by yearPenalty when both
// records carry a year and the years differ. A missing year on either
// side disables the adjustment. Symmetric in its record arguments.
func Score(a, b record.Record, yearPenalty float64) float64 {
	score := textutil.Ratio(a.NormalizedTitle, b.NormalizedTitle)
	if !a.Year.IsEmpty() && !b.Year.IsEmpty() && yearText(a) != yearText(b) {
		score *= yearPenalty
	}
	return score
}

// yearText compares raw year text: unparsable years still count as a
// mismatch when they differ, matching how the thresholds were tuned.
func yearText(r record.Record) string {
	return strings.TrimSpace(r.Year.String())
}

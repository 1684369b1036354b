package textutil

import (
	"strings"

	"golang.org/x/text/cases"
)

// punctuationReplacer strips the punctuation that varies freely between
// citation styles: sentence punctuation plus straight and curly quotes.
var punctuationReplacer = strings.NewReplacer(
	".", "",
	",", "",
	";", "",
	":", "",
	"!", "",
	"?", "",
	`"`, "",
	"'", "",
	"‘", "",
	"’", "",
	"“", "",
	"”", "",
)

var foldCaser = cases.Fold()

// NormalizeTitle converts a title to its canonical comparison form:
// case folded to lowercase, fixed punctuation removed, whitespace runs
// collapsed to single spaces, and the result trimmed. The function is
// deterministic and idempotent; empty input yields empty output.
func NormalizeTitle(title string) string {
	if title == "" {
		return ""
	}
	lowered := foldCaser.String(title)
	stripped := punctuationReplacer.Replace(lowered)
	return strings.Join(strings.Fields(stripped), " ")
}

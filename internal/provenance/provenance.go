// Package provenance parses free-form citation text into typed fields.
// Source documents keep the original citation line for audit; the year and
// title needed for matching are extracted here rather than scanned ad hoc
// at the call sites.
package provenance

import (
	"regexp"
	"strings"

	"bibsync/internal/record"
)

// yearPattern matches a parenthesized four-digit publication year, the
// dominant convention in author-maintained citation lists.
var yearPattern = regexp.MustCompile(`\((\d{4})\)`)

// maxTitleRunes bounds the fallback title when no sentence boundary is
// found in the citation text.
const maxTitleRunes = 100

// Citation is the typed result of parsing one citation line.
type Citation struct {
	Title string
	Year  record.Year
	Raw   string
}

// Parse extracts the year and title from a free-form citation line.
// The year is the first parenthesized four-digit run; the title is the
// first sentence following it. Without a year the leading text serves as
// the title. Missing pieces are represented as empty values, never errors.
func Parse(text string) Citation {
	citation := Citation{Raw: text}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return citation
	}

	loc := yearPattern.FindStringSubmatchIndex(trimmed)
	if loc == nil {
		citation.Title = truncateTitle(trimmed)
		return citation
	}

	citation.Year = record.Year(trimmed[loc[2]:loc[3]])

	rest := strings.TrimSpace(trimmed[loc[1]:])
	rest = strings.TrimPrefix(rest, ".")
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return citation
	}

	if idx := strings.IndexRune(rest, '.'); idx >= 0 {
		citation.Title = strings.TrimSpace(rest[:idx])
	} else {
		citation.Title = truncateTitle(rest)
	}
	return citation
}

// Record converts a parsed citation into a primary-source record carrying
// the original text as raw provenance.
func (c Citation) Record() record.Record {
	return record.New(record.Fields{
		Title:         c.Title,
		Year:          c.Year.String(),
		Source:        record.SourcePrimary,
		RawProvenance: c.Raw,
	})
}

func truncateTitle(text string) string {
	runes := []rune(text)
	if len(runes) <= maxTitleRunes {
		return text
	}
	return strings.TrimSpace(string(runes[:maxTitleRunes]))
}

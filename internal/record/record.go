package record

import (
	"encoding/json"

	"bibsync/internal/textutil"
)

// Source identifies which side of the reconciliation a record came from.
// Provenance only; it never participates in scoring.
type Source string

const (
	// SourcePrimary marks records extracted from the author-maintained
	// document. They typically carry raw provenance text and omit
	// authors, venue, and citation counts.
	SourcePrimary Source = "primary"
	// SourceExternal marks records retrieved from the external citation
	// index. They typically carry all fields except raw provenance.
	SourceExternal Source = "external"
)

// Record is a single bibliographic entry. Construct with New so the
// normalized title invariant holds; treat constructed records as
// read-only.
type Record struct {
	Title           string `json:"title"`
	NormalizedTitle string `json:"-"`
	Year            Year   `json:"year,omitempty"`
	Authors         string `json:"authors,omitempty"`
	Venue           string `json:"venue,omitempty"`
	Citations       int    `json:"citations,omitempty"`
	Source          Source `json:"source,omitempty"`
	RawProvenance   string `json:"full_text,omitempty"`
}

// Fields carries the raw inputs for building a Record.
type Fields struct {
	Title         string
	Year          string
	Authors       string
	Venue         string
	Citations     int
	Source        Source
	RawProvenance string
}

// New builds a record and derives its normalized title.
func New(fields Fields) Record {
	return Record{
		Title:           fields.Title,
		NormalizedTitle: textutil.NormalizeTitle(fields.Title),
		Year:            Year(fields.Year),
		Authors:         fields.Authors,
		Venue:           fields.Venue,
		Citations:       fields.Citations,
		Source:          fields.Source,
		RawProvenance:   fields.RawProvenance,
	}
}

// UnmarshalJSON decodes a record and re-derives the normalized title so
// the invariant holds for records loaded from documents.
func (r *Record) UnmarshalJSON(data []byte) error {
	type alias Record
	var decoded alias
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*r = Record(decoded)
	r.NormalizedTitle = textutil.NormalizeTitle(r.Title)
	return nil
}

// SortYear returns the year used for ordering merged stores: the parsed
// year, or 0 when the year is missing or unparsable so such records sort
// last in a descending sort.
func (r Record) SortYear() int {
	value, ok := r.Year.Value()
	if !ok {
		return 0
	}
	return value
}

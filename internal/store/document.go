package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"time"

	"bibsync/internal/fileutil"
	"bibsync/internal/provenance"
	"bibsync/internal/record"
)

// timestampLayout matches the metadata timestamps carried by existing
// documents.
const timestampLayout = "2006-01-02 15:04:05"

// AuthorInfo is the profile metadata block at the head of a document.
type AuthorInfo struct {
	Name         string         `json:"name,omitempty"`
	Affiliation  string         `json:"affiliation,omitempty"`
	Interests    []string       `json:"interests,omitempty"`
	CitedBy      int            `json:"citedby,omitempty"`
	HIndex       int            `json:"hindex,omitempty"`
	I10Index     int            `json:"i10index,omitempty"`
	CitesPerYear map[string]int `json:"cites_per_year,omitempty"`
	ProfileURL   string         `json:"url,omitempty"`
}

// IsZero reports whether the block carries no information.
func (a AuthorInfo) IsZero() bool {
	return a.Name == "" && a.Affiliation == "" && len(a.Interests) == 0 &&
		a.CitedBy == 0 && a.HIndex == 0 && a.I10Index == 0 &&
		len(a.CitesPerYear) == 0 && a.ProfileURL == ""
}

// Document is a canonical or batch publication document.
type Document struct {
	AuthorInfo        AuthorInfo      `json:"author_info,omitzero"`
	Publications      []record.Record `json:"publications"`
	FetchedAt         string          `json:"fetched_at,omitempty"`
	LastUpdated       string          `json:"last_updated,omitempty"`
	TotalPublications int             `json:"total_publications"`
}

// Load reads a document from path. A missing file is a valid empty
// document, not an error.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Document{}, nil
		}
		return nil, fmt.Errorf("read document %s: %w", path, err)
	}
	if len(data) == 0 {
		return &Document{}, nil
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse document %s: %w", path, err)
	}
	doc.deriveFromProvenance()
	return &doc, nil
}

// deriveFromProvenance fills in records that carry only a free-form
// citation line, the shape primary documents use for publications copied
// straight out of a CV.
func (d *Document) deriveFromProvenance() {
	for i, pub := range d.Publications {
		if pub.Title != "" || pub.RawProvenance == "" {
			continue
		}
		parsed := provenance.Parse(pub.RawProvenance).Record()
		if !pub.Year.IsEmpty() {
			parsed.Year = pub.Year
		}
		parsed.Authors = pub.Authors
		parsed.Venue = pub.Venue
		parsed.Citations = pub.Citations
		d.Publications[i] = parsed
	}
}

// Save writes the document to path atomically. Failures leave the prior
// persisted document untouched and are reported as a WriteError.
func Save(path string, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &WriteError{Path: path, Err: fmt.Errorf("marshal document: %w", err)}
	}
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// Touch refreshes the document's count and last-updated metadata.
func (d *Document) Touch(now time.Time) {
	d.TotalPublications = len(d.Publications)
	d.LastUpdated = now.Format(timestampLayout)
}

// SortByYearDescending orders publications newest first. Records with a
// missing or unparsable year sort as year 0, i.e. last. The sort is
// stable so records within a year keep their relative order.
func (d *Document) SortByYearDescending() {
	sort.SliceStable(d.Publications, func(i, j int) bool {
		return d.Publications[i].SortYear() > d.Publications[j].SortYear()
	})
}

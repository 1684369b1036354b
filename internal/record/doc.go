// Package record defines the bibliographic record shared by every part of
// the reconciliation pipeline.
//
// Records are immutable once constructed: the normalized title is derived
// from the raw title at construction (and on decode), and no component
// mutates record fields afterwards. Year values arrive from source
// documents as either JSON strings or numbers and are carried as a typed
// Year that parses on demand.
package record

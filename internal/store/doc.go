// Package store persists the canonical publication document and the batch
// documents reconciled against it.
//
// Both document kinds share one JSON shape: an author metadata block, an
// ordered publication list, and count/timestamp metadata. A missing file
// loads as an empty document rather than an error. Saves follow the
// write-to-temp-then-rename discipline so the persisted document is
// either fully replaced or left byte-for-byte unchanged, and checkpoint
// copies of the live document are taken before merges for manual
// rollback.
package store

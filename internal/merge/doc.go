// Package merge applies deduplication results to the canonical document.
//
// A merge is all-or-nothing: a checkpoint copy of the live document is
// written before any mutation, the updated document is persisted
// atomically, and any write failure leaves the previously persisted state
// untouched. Merges holding potential duplicates only proceed when an
// explicit confirmation policy approves them; the manager itself never
// talks to a terminal, it just consults whatever Policy it is handed.
// Concurrent merges are excluded with a file lock next to the store.
package merge

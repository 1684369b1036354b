// Package match implements fuzzy matching over bibliographic records:
// pairwise similarity scoring, one-shot reconciliation of two record sets,
// and incremental deduplication of a batch against an existing collection.
//
// The two matching operations deliberately follow different disciplines.
// Reconcile pairs records one-to-one: once a candidate is claimed it is
// withdrawn from consideration for every later record, greedily and in
// input order. Deduplicate answers "does this record already exist" per
// batch item: the existing collection is never depleted, and the first
// record at or above the duplicate threshold wins without scanning for a
// better one. Both are pure functions over immutable inputs.
package match

package history

import "time"

// Run kinds recorded in the ledger.
const (
	KindCompare = "compare"
	KindUpdate  = "update"
)

// Run captures one compare or update invocation and its outcome counts.
// Compare runs populate the reconciliation counters; update runs populate
// the dedup and merge counters. Unused counters stay zero.
type Run struct {
	ID         string
	Kind       string
	StartedAt  time.Time
	FinishedAt time.Time

	// Reconciliation outcome.
	Matched        int
	Potential      int
	OnlyInPrimary  int
	OnlyInExternal int

	// Dedup and merge outcome.
	TrulyNew            int
	Duplicates          int
	PotentialDuplicates int
	Added               int
	Merged              bool
	CheckpointPath      string
}

// Duration returns the elapsed wall time of the run.
func (r Run) Duration() time.Duration {
	if r.FinishedAt.IsZero() || r.StartedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

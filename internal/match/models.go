package match

import "bibsync/internal/record"

// Tier classifies how strongly a pair of records is believed to denote
// the same publication.
type Tier string

const (
	// TierMatched marks pairs at or above the definite threshold.
	TierMatched Tier = "matched"
	// TierPotential marks pairs between the potential and definite
	// thresholds; they need manual review.
	TierPotential Tier = "potential"
)

// Pair couples a record from each side of a reconciliation with the score
// that paired them. Pairs exist only inside reports; they are never
// persisted.
type Pair struct {
	A     record.Record
	B     record.Record
	Score float64
	Tier  Tier
}

// Report is the outcome of one reconciliation run. The four collections
// are disjoint and together cover every input record from both sides
// exactly once.
type Report struct {
	Matched   []Pair
	Potential []Pair
	OnlyInA   []record.Record
	OnlyInB   []record.Record
}

// DedupPair couples a batch record with the existing record it collided
// with.
type DedupPair struct {
	New      record.Record
	Existing record.Record
	Score    float64
}

// DedupReport is the outcome of deduplicating a batch against an existing
// collection. Every batch record lands in exactly one of the three
// collections.
type DedupReport struct {
	TrulyNew            []record.Record
	Duplicates          []DedupPair
	PotentialDuplicates []DedupPair
}

// Default thresholds and year damping, shared by both matching
// disciplines unless configured otherwise.
const (
	DefaultMatchThreshold     = 0.85
	DefaultPotentialThreshold = 0.65
	DefaultYearPenalty        = 0.7
)

// Options carries the tunable knobs for scoring and classification.
// Matching and deduplication may run with different values.
type Options struct {
	// MatchThreshold is the definite cutoff: pairs scoring at or above
	// it are Matched (reconciliation) or Duplicate (deduplication).
	MatchThreshold float64
	// PotentialThreshold is the review cutoff below MatchThreshold.
	PotentialThreshold float64
	// YearPenalty is the damping factor applied when both records carry
	// a year and the years differ.
	YearPenalty float64
}

// DefaultOptions returns the standard thresholds.
func DefaultOptions() Options {
	return Options{
		MatchThreshold:     DefaultMatchThreshold,
		PotentialThreshold: DefaultPotentialThreshold,
		YearPenalty:        DefaultYearPenalty,
	}
}

// withDefaults fills unset knobs so the zero value behaves like
// DefaultOptions.
func (o Options) withDefaults() Options {
	if o.MatchThreshold == 0 {
		o.MatchThreshold = DefaultMatchThreshold
	}
	if o.PotentialThreshold == 0 {
		o.PotentialThreshold = DefaultPotentialThreshold
	}
	if o.YearPenalty == 0 {
		o.YearPenalty = DefaultYearPenalty
	}
	return o
}

package match

import "bibsync/internal/record"

// Reconcile classifies two record collections into matched pairs,
// potential pairs, and records unique to either side. Records in a are
// processed in order; each takes the best-scoring unclaimed record from b
// (ties broken by b's order, first encountered wins). Pairs at or above
// the match threshold are Matched, pairs at or above the potential
// threshold are Potential, and both kinds claim their b record so later
// a records cannot pair with it. The strategy is greedy and
// order-dependent, not a globally optimal assignment: a later record that
// would have scored higher against an already-claimed candidate loses out.
//
// Empty collections are valid; every record of the absent side's
// counterpart is then reported as unique. The inputs are not modified.
func Reconcile(a, b []record.Record, opts Options) Report {
	opts = opts.withDefaults()

	claimed := make([]bool, len(b))
	paired := make([]bool, len(a))
	var report Report

	for i, left := range a {
		bestScore := 0.0
		bestIdx := -1
		for j, right := range b {
			if claimed[j] {
				continue
			}
			score := Score(left, right, opts.YearPenalty)
			if score > bestScore {
				bestScore = score
				bestIdx = j
			}
		}
		if bestIdx < 0 {
			continue
		}
		switch {
		case bestScore >= opts.MatchThreshold:
			report.Matched = append(report.Matched, Pair{
				A:     left,
				B:     b[bestIdx],
				Score: bestScore,
				Tier:  TierMatched,
			})
			claimed[bestIdx] = true
			paired[i] = true
		case bestScore >= opts.PotentialThreshold:
			report.Potential = append(report.Potential, Pair{
				A:     left,
				B:     b[bestIdx],
				Score: bestScore,
				Tier:  TierPotential,
			})
			claimed[bestIdx] = true
			paired[i] = true
		}
	}

	for i, left := range a {
		if !paired[i] {
			report.OnlyInA = append(report.OnlyInA, left)
		}
	}
	for j, right := range b {
		if !claimed[j] {
			report.OnlyInB = append(report.OnlyInB, right)
		}
	}

	return report
}

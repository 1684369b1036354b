package match

import "bibsync/internal/record"

// Deduplicate classifies each batch record against the existing
// collection. The first existing record scoring at or above the match
// threshold makes the batch record a Duplicate immediately; the scan does
// not continue looking for a better match. Otherwise the best score seen
// across the full collection decides: at or above the potential threshold
// the record is a PotentialDuplicate against that best match, below it
// the record is TrulyNew.
//
// Unlike Reconcile, existing records are never claimed: one existing
// record may absorb any number of batch duplicates. The existing
// collection is not modified.
func Deduplicate(existing, batch []record.Record, opts Options) DedupReport {
	opts = opts.withDefaults()

	var report DedupReport
	for _, incoming := range batch {
		bestScore := 0.0
		bestIdx := -1
		duplicate := false

		for idx, present := range existing {
			score := Score(incoming, present, opts.YearPenalty)
			if score > bestScore {
				bestScore = score
				bestIdx = idx
			}
			if score >= opts.MatchThreshold {
				report.Duplicates = append(report.Duplicates, DedupPair{
					New:      incoming,
					Existing: present,
					Score:    score,
				})
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}

		if bestIdx >= 0 && bestScore >= opts.PotentialThreshold {
			report.PotentialDuplicates = append(report.PotentialDuplicates, DedupPair{
				New:      incoming,
				Existing: existing[bestIdx],
				Score:    bestScore,
			})
			continue
		}
		report.TrulyNew = append(report.TrulyNew, incoming)
	}

	return report
}

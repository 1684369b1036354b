package textutil

// Ratio computes the sequence similarity of two strings as 2*M/T, where T
// is the combined length of both strings and M is the total length of all
// non-overlapping matching runs found by repeatedly locating the longest
// common contiguous substring and recursing on the fragments either side
// of it. The result is in [0,1] and symmetric in its arguments.
//
// Two empty strings score 1.0 by convention; callers should avoid scoring
// empty titles against each other.
func Ratio(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}
	matched := matchTotal(ra, rb, 0, len(ra), 0, len(rb))
	return 2.0 * float64(matched) / float64(total)
}

// matchTotal sums the lengths of all matching blocks within the given
// window of both sequences.
func matchTotal(a, b []rune, alo, ahi, blo, bhi int) int {
	i, j, size := longestMatch(a, b, alo, ahi, blo, bhi)
	if size == 0 {
		return 0
	}
	sum := size
	sum += matchTotal(a, b, alo, i, blo, j)
	sum += matchTotal(a, b, i+size, ahi, j+size, bhi)
	return sum
}

// longestMatch locates the longest common contiguous run between
// a[alo:ahi] and b[blo:bhi]. Ties go to the run starting earliest in a,
// then earliest in b.
func longestMatch(a, b []rune, alo, ahi, blo, bhi int) (besti, bestj, bestsize int) {
	besti, bestj = alo, blo

	// j2len[j] holds the length of the longest run ending at a[i-1], b[j].
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		next := make(map[int]int)
		for j := blo; j < bhi; j++ {
			if a[i] != b[j] {
				continue
			}
			k := j2len[j-1] + 1
			next[j] = k
			if k > bestsize {
				besti = i - k + 1
				bestj = j - k + 1
				bestsize = k
			}
		}
		j2len = next
	}
	return besti, bestj, bestsize
}

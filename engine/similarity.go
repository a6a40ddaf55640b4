package engine

// Ratio computes a Ratcliff/Obershelp similarity score in [0,100] between
// two strings. Both inputs are normalized first. Matched-block lengths are
// summed recursively: find the longest common contiguous substring, then
// recurse on the unmatched left and right remainders. The score is
// 200*M/(len(a)+len(b)); two empty strings score 0.
//
// This is the sole approximate-match primitive in the engine; every fuzzy
// comparison is this function with a caller-chosen threshold.
func Ratio(a, b string) float64 {
	ra := []rune(Normalize(a))
	rb := []rune(Normalize(b))
	total := len(ra) + len(rb)
	if total == 0 {
		return 0
	}
	return 200 * float64(matchedLength(ra, rb)) / float64(total)
}

// matchedLength sums the lengths of all matched blocks between a and b.
func matchedLength(a, b []rune) int {
	ai, bi, size := longestCommonBlock(a, b)
	if size == 0 {
		return 0
	}
	return size +
		matchedLength(a[:ai], b[:bi]) +
		matchedLength(a[ai+size:], b[bi+size:])
}

// longestCommonBlock finds the longest common contiguous substring of a
// and b, returning its start offsets and length. Earliest match wins ties.
func longestCommonBlock(a, b []rune) (ai, bi, size int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}
	// lengths[j] holds the length of the common suffix ending at a[i], b[j-1]
	// from the previous row.
	lengths := make([]int, len(b)+1)
	for i := range a {
		prev := 0
		for j := 1; j <= len(b); j++ {
			cur := lengths[j]
			if a[i] == b[j-1] {
				lengths[j] = prev + 1
				if lengths[j] > size {
					size = lengths[j]
					ai = i - size + 1
					bi = j - size
				}
			} else {
				lengths[j] = 0
			}
			prev = cur
		}
	}
	return ai, bi, size
}

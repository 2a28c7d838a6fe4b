package service

// similarity returns the Ratcliff/Obershelp ratio 2*M/T of a and b, where M
// is the number of characters in matching blocks and T the combined length.
// Two empty strings are identical.
func similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1
	}
	return 2 * float64(matchingChars(ra, rb, 0, len(ra), 0, len(rb))) / float64(total)
}

// matchingChars sums the longest common block in the window and then
// recurses into what lies left and right of it.
func matchingChars(a, b []rune, alo, ahi, blo, bhi int) int {
	i, j, k := longestMatch(a, b, alo, ahi, blo, bhi)
	if k == 0 {
		return 0
	}
	return k +
		matchingChars(a, b, alo, i, blo, j) +
		matchingChars(a, b, i+k, ahi, j+k, bhi)
}

// longestMatch finds the longest common block of a[alo:ahi] and b[blo:bhi].
// Ties go to the block starting earliest in a, then earliest in b.
func longestMatch(a, b []rune, alo, ahi, blo, bhi int) (besti, bestj, bestk int) {
	besti, bestj = alo, blo
	width := bhi - blo + 1
	prev := make([]int, width)
	cur := make([]int, width)

	for i := alo; i < ahi; i++ {
		for j := blo; j < bhi; j++ {
			jj := j - blo + 1
			if a[i] != b[j] {
				cur[jj] = 0
				continue
			}
			k := prev[jj-1] + 1
			cur[jj] = k
			if k > bestk {
				besti, bestj, bestk = i-k+1, j-k+1, k
			}
		}
		prev, cur = cur, prev
	}

	return besti, bestj, bestk
}

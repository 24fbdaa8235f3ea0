// Package suggest finds the nearest-spelled candidate to an unresolved
// name, for "did you mean" diagnostics.
package suggest

// Nearest returns the candidate closest to name by Levenshtein distance,
// and a confidence in (0,1] derived from the distance relative to the
// longer string's length. Returns ("", 0) if candidates is empty or
// nothing is within a reasonable edit distance of name.
func Nearest(name string, candidates []string) (string, float64) {
	best := ""
	bestDist := -1
	for _, c := range candidates {
		d := levenshtein(name, c)
		if bestDist == -1 || d < bestDist {
			bestDist = d
			best = c
		}
	}
	if best == "" {
		return "", 0
	}
	longer := len(name)
	if len(best) > longer {
		longer = len(best)
	}
	if longer == 0 || bestDist > longer/2+1 {
		return "", 0
	}
	confidence := 1 - float64(bestDist)/float64(longer+1)
	return best, confidence
}

// levenshtein computes the edit distance between a and b.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			curr[j] = min3(del, ins, sub)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

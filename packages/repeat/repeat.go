// Package repeat detects pathological token repetition in extracted text,
// the signature of a decoder stuck in a loop.
package repeat

import "strings"

// DefaultMaxN is the longest n-gram length scanned by default.
const DefaultMaxN = 5

// Detector scans token n-grams of length 1 through MaxN.
type Detector struct {
	MaxN int
}

// NewDetector creates a detector for n-grams up to maxN tokens long.
// A non-positive maxN selects DefaultMaxN.
func NewDetector(maxN int) *Detector {
	if maxN <= 0 {
		maxN = DefaultMaxN
	}
	return &Detector{MaxN: maxN}
}

// NgramRepeats returns, for each n in 1..MaxN (at index n-1), the longest
// run of one n-gram repeated back to back anywhere in text. Tokens are
// whitespace-delimited words with case preserved. A value of 1 means no
// n-gram is immediately repeated; 0 means text has fewer than n tokens.
func (d *Detector) NgramRepeats(text string) []int {
	tokens := strings.Fields(text)
	counts := make([]int, d.MaxN)
	for n := 1; n <= d.MaxN; n++ {
		counts[n-1] = longestRun(tokens, n)
	}
	return counts
}

// longestRun computes run[i], the number of consecutive copies of the
// n-gram starting at i, from the back of the token list.
func longestRun(tokens []string, n int) int {
	if len(tokens) < n {
		return 0
	}
	last := len(tokens) - n
	run := make([]int, last+1)
	best := 0
	for i := last; i >= 0; i-- {
		run[i] = 1
		if i+n <= last && sameGram(tokens, i, i+n, n) {
			run[i] = run[i+n] + 1
		}
		best = max(best, run[i])
	}
	return best
}

func sameGram(tokens []string, a, b, n int) bool {
	for k := 0; k < n; k++ {
		if tokens[a+k] != tokens[b+k] {
			return false
		}
	}
	return true
}

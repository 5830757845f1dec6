package fuzzy

// approximate is Sellers' algorithm: a Levenshtein table over pattern x
// text whose first row is all zeros, so a match may begin at any text
// position. Only one column is kept, and only cells up to the last one
// within budget are computed (Ukkonen's cut-off), which keeps the scan
// close to O(len(text) * k) on real pages.
func approximate(text, pattern []rune, k int) []Match {
	m := len(pattern)
	if m == 0 {
		return []Match{{}}
	}

	col := make([]int, m+1)
	for i := range col {
		col[i] = i
	}
	last := min(k, m)

	var matches []Match
	bestEnd, bestDist := -1, 0
	flush := func() {
		if bestEnd < 0 {
			return
		}
		start := alignStart(text[:bestEnd], pattern, bestDist)
		matches = append(matches, Match{Start: start, End: bestEnd, Distance: bestDist})
		bestEnd = -1
	}

	// An empty window already fits when the budget covers the whole pattern.
	if last == m {
		bestEnd, bestDist = 0, m
	}

	for j, r := range text {
		diag := 0
		top := min(last+1, m)
		for i := 1; i <= top; i++ {
			old := col[i]
			if i > last {
				old = k + 1
			}
			v := diag
			if pattern[i-1] != r {
				v++
			}
			if old+1 < v {
				v = old + 1
			}
			if col[i-1]+1 < v {
				v = col[i-1] + 1
			}
			diag = old
			col[i] = v
		}

		last = top
		for last > 0 && col[last] > k {
			last--
		}

		if last == m {
			if bestEnd < 0 || col[m] < bestDist {
				bestEnd, bestDist = j+1, col[m]
			}
		} else {
			flush()
		}
	}
	flush()
	return matches
}

// alignStart finds where an alignment of pattern ending exactly at the end
// of text begins. Among starts reaching the lowest distance it prefers the
// window whose length is closest to the pattern's.
func alignStart(text, pattern []rune, dist int) int {
	m := len(pattern)
	seg := text[max(0, len(text)-m-dist):]
	n := len(seg)

	prev := make([]int, m+1)
	cur := make([]int, m+1)
	for i := range prev {
		prev[i] = i
	}
	best, bestLen := prev[m], 0

	for j := 1; j <= n; j++ {
		r := seg[n-j]
		cur[0] = j
		for i := 1; i <= m; i++ {
			v := prev[i-1]
			if pattern[m-i] != r {
				v++
			}
			if prev[i]+1 < v {
				v = prev[i] + 1
			}
			if cur[i-1]+1 < v {
				v = cur[i-1] + 1
			}
			cur[i] = v
		}
		prev, cur = cur, prev
		if prev[m] < best || (prev[m] == best && abs(j-m) < abs(bestLen-m)) {
			best, bestLen = prev[m], j
		}
	}
	return len(text) - bestLen
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

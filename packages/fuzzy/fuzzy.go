package fuzzy

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Options controls a search.
type Options struct {
	// MaxDiffs is the edit-distance budget. Zero means exact matching.
	MaxDiffs int
	// CaseSensitive disables case folding of both strings.
	CaseSensitive bool
	// FirstN and LastN restrict the search to the first and/or last N
	// characters of the haystack. Zero means unbounded.
	FirstN int
	LastN  int
}

// Match is a located occurrence. Start and End are rune offsets into the
// searched text (after case folding, when the search is case-insensitive).
type Match struct {
	Start    int
	End      int
	Distance int
}

// Windows returns the parts of haystack a search with the given bounds
// looks at. When both bounds are set, the two windows are searched
// independently, so a match never straddles the gap between them.
func Windows(haystack string, firstN, lastN int) []string {
	if firstN <= 0 && lastN <= 0 {
		return []string{haystack}
	}
	runes := []rune(haystack)
	var windows []string
	if firstN > 0 {
		windows = append(windows, string(runes[:min(firstN, len(runes))]))
	}
	if lastN > 0 {
		windows = append(windows, string(runes[max(0, len(runes)-lastN):]))
	}
	return windows
}

// Contains reports whether target occurs in haystack within the budget.
func Contains(haystack, target string, opts Options) bool {
	_, ok := Find(haystack, target, opts)
	return ok
}

// Find returns the best match of target across the configured windows:
// lowest distance first, then earliest position.
func Find(haystack, target string, opts Options) (Match, bool) {
	var best Match
	found := false
	for _, w := range Windows(haystack, opts.FirstN, opts.LastN) {
		for _, m := range FindAll(w, target, Options{MaxDiffs: opts.MaxDiffs, CaseSensitive: opts.CaseSensitive}) {
			if !found || m.Distance < best.Distance {
				best, found = m, true
			}
			if best.Distance == 0 {
				return best, true
			}
		}
	}
	return best, found
}

// FindAll returns the matches of target in haystack ordered by position.
// Adjacent candidate end positions collapse to the one with the lowest
// distance. Window bounds in opts are ignored; use Windows to split the
// haystack first.
func FindAll(haystack, target string, opts Options) []Match {
	if !opts.CaseSensitive {
		fold := cases.Fold()
		haystack = fold.String(haystack)
		target = fold.String(target)
	}
	if opts.MaxDiffs <= 0 {
		return exact(haystack, target)
	}
	return approximate([]rune(haystack), []rune(target), opts.MaxDiffs)
}

func exact(haystack, target string) []Match {
	n := utf8.RuneCountInString(target)
	var matches []Match
	offset, runeOffset := 0, 0
	for {
		i := strings.Index(haystack[offset:], target)
		if i < 0 {
			return matches
		}
		start := runeOffset + utf8.RuneCountInString(haystack[offset:offset+i])
		matches = append(matches, Match{Start: start, End: start + n})
		if target == "" {
			return matches
		}
		_, size := utf8.DecodeRuneInString(haystack[offset+i:])
		runeOffset = start + 1
		offset += i + size
	}
}

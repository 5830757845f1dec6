// Package fuzzy locates a target string inside a page of text while
// tolerating a bounded number of character edits.
//
// A match is a contiguous window of the haystack whose Levenshtein
// distance to the target is at most Options.MaxDiffs. With a budget of
// zero the search is a plain substring search. Searches may be restricted
// to the first and/or last N characters of the haystack.
package fuzzy

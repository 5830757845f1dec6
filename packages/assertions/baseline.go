package assertions

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/rangetable"

	"github.com/abdul-hamid-achik/pagespec/packages/repeat"
)

// repeatGram is the n-gram length whose repetition the baseline check
// limits.
const repeatGram = 3

// AllowedCharacters is the character allow-list of the baseline check:
// printable ASCII with common whitespace, plus Latin, Greek, punctuation,
// mathematical and symbol blocks that appear in clean extractions.
var AllowedCharacters = rangetable.Merge(
	block('\t', '\n'),
	block('\r', '\r'),
	block(0x0020, 0x007e),   // printable ASCII
	block(0x00a0, 0x03ff),   // Latin-1, Latin Extended-A/B, IPA, modifiers, diacritics, Greek
	block(0x1e00, 0x1eff),   // Latin Extended Additional
	block(0x2000, 0x23ff),   // punctuation, scripts, currency, letterlike, arrows, math operators
	block(0x2500, 0x25ff),   // box drawing, block elements, geometric shapes
	block(0xfb00, 0xfb4f),   // alphabetic presentation forms
	block(0x1d400, 0x1d7ff), // mathematical alphanumeric symbols
)

func block(lo, hi rune) *unicode.RangeTable {
	if hi <= 0xffff {
		return &unicode.RangeTable{R16: []unicode.Range16{{Lo: uint16(lo), Hi: uint16(hi), Stride: 1}}}
	}
	return &unicode.RangeTable{R32: []unicode.Range32{{Lo: uint32(lo), Hi: uint32(hi), Stride: 1}}}
}

func newRepeatScanner(maxN int) RepeatScanner {
	return repeat.NewDetector(maxN)
}

// Baseline is the payload of baseline assertions.
type Baseline struct {
	MaxRepeats int `json:"max_repeats" validate:"gt=0"`

	scanner RepeatScanner
}

func (b *Baseline) run(_ *Assertion, haystack string) (bool, string) {
	if !strings.ContainsFunc(haystack, isAlphanumeric) {
		return false, "The text contains no alpha numeric characters"
	}

	if bad := disallowed(haystack); len(bad) > 0 {
		quoted := make([]string, len(bad))
		for i, r := range bad {
			quoted[i] = fmt.Sprintf("'%c'", r)
		}
		return false, "Text contains disallowed characters: " + strings.Join(quoted, ", ")
	}

	scanner := b.scanner
	if scanner == nil {
		scanner = newRepeatScanner(repeat.DefaultMaxN)
	}
	counts := scanner.NgramRepeats(haystack)
	if len(counts) >= repeatGram && counts[repeatGram-1] > b.MaxRepeats {
		return false, fmt.Sprintf("Text contains %d repeating %d-grams, more than the %d allowed (n-grams n=%d count=%d)",
			counts[repeatGram-1], repeatGram, b.MaxRepeats, repeatGram, counts[repeatGram-1])
	}
	return true, "Text passes baseline checks"
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// disallowed returns the distinct characters outside AllowedCharacters in
// code point order.
func disallowed(s string) []rune {
	var bad []rune
	for _, r := range s {
		if !unicode.Is(AllowedCharacters, r) && !slices.Contains(bad, r) {
			bad = append(bad, r)
		}
	}
	slices.Sort(bad)
	return bad
}

package assertions

import (
	"fmt"

	"github.com/abdul-hamid-achik/pagespec/packages/fuzzy"
	"github.com/abdul-hamid-achik/pagespec/packages/normalize"
)

// Order is the payload of order assertions.
type Order struct {
	Before string `json:"before" validate:"required,notblank"`
	After  string `json:"after" validate:"required,notblank"`
}

// run passes when the first occurrence of Before starts before some
// occurrence of After. When Before and After are the same string a single
// occurrence satisfies it.
func (o *Order) run(a *Assertion, haystack string) (bool, string) {
	text := normalize.Text(haystack)
	opts := fuzzy.Options{MaxDiffs: a.MaxDiffs, CaseSensitive: true}

	before, after := normalize.Text(o.Before), normalize.Text(o.After)
	befores := fuzzy.FindAll(text, before, opts)
	if len(befores) == 0 {
		return false, fmt.Sprintf("'before' text '%s' not found in content", o.Before)
	}
	afters := fuzzy.FindAll(text, after, opts)
	if len(afters) == 0 {
		return false, fmt.Sprintf("'after' text '%s' not found in content", o.After)
	}

	first := befores[0]
	for _, m := range befores[1:] {
		if m.Start < first.Start {
			first = m
		}
	}
	self := before == after
	for _, m := range afters {
		if m.Start > first.Start || (self && m.Start == first.Start) {
			return true, fmt.Sprintf("'%s' appears before '%s'", o.Before, o.After)
		}
	}
	return false, fmt.Sprintf("'%s' does not appear before '%s'", o.Before, o.After)
}

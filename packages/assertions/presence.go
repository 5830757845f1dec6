package assertions

import (
	"fmt"

	"github.com/abdul-hamid-achik/pagespec/packages/fuzzy"
	"github.com/abdul-hamid-achik/pagespec/packages/normalize"
)

// Presence is the payload of present and absent assertions.
type Presence struct {
	Text string `json:"text" validate:"required,notblank"`
	// CaseSensitive is false in the zero value. Records decoded by New
	// default it to true; callers of NewPresence must set it themselves.
	CaseSensitive bool `json:"case_sensitive"`
	// FirstN and LastN limit the search to the first/last N characters of
	// the normalized page. Zero means unbounded.
	FirstN int `json:"first_n" validate:"gte=0"`
	LastN  int `json:"last_n" validate:"gte=0"`
}

func (p *Presence) run(a *Assertion, haystack string) (bool, string) {
	opts := fuzzy.Options{
		MaxDiffs:      a.MaxDiffs,
		CaseSensitive: p.CaseSensitive,
		FirstN:        p.FirstN,
		LastN:         p.LastN,
	}
	m, found := fuzzy.Find(normalize.Text(haystack), normalize.Text(p.Text), opts)

	if a.Kind == KindAbsent {
		if found {
			return false, fmt.Sprintf("Text '%s' found in content%s (distance %d), expected absent", p.Text, p.scope(), m.Distance)
		}
		return true, fmt.Sprintf("Text '%s' absent from content%s", p.Text, p.scope())
	}

	if found {
		return true, fmt.Sprintf("Text '%s' found in content%s (distance %d)", p.Text, p.scope(), m.Distance)
	}
	return false, fmt.Sprintf("Text '%s' not found in content%s within %d edits", p.Text, p.scope(), a.MaxDiffs)
}

func (p *Presence) scope() string {
	switch {
	case p.FirstN > 0 && p.LastN > 0:
		return fmt.Sprintf(" (first %d or last %d characters)", p.FirstN, p.LastN)
	case p.FirstN > 0:
		return fmt.Sprintf(" (first %d characters)", p.FirstN)
	case p.LastN > 0:
		return fmt.Sprintf(" (last %d characters)", p.LastN)
	default:
		return ""
	}
}

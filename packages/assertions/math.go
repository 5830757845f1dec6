package assertions

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/abdul-hamid-achik/pagespec/packages/equation"
)

// Math is the payload of math assertions.
type Math struct {
	Expression string `json:"math" validate:"required,notblank"`

	rendered   image.Image
	comparator *equation.Comparator
	delimiters []equation.Delimiter
}

func (m *Math) run(a *Assertion, haystack string) (bool, string) {
	candidate, ok := equation.FindDelimited(haystack, m.delimiters)
	if !ok {
		return false, "No equation found in content"
	}
	if equation.Identical(candidate, m.Expression) {
		return true, fmt.Sprintf("Equation '%s' matches exactly", candidate)
	}
	if m.comparator == nil || m.rendered == nil {
		return false, fmt.Sprintf("No match found for '%s': no renderer to compare '%s'", m.Expression, candidate)
	}

	match, err := m.comparator.Matches(m.rendered, candidate)
	if err != nil {
		if a.logger != nil {
			a.logger.Warn("candidate equation did not render",
				slog.String("id", a.ID),
				slog.String("candidate", candidate),
				slog.Any("error", err),
			)
		}
		return false, fmt.Sprintf("Equation '%s' could not be rendered: %v", candidate, err)
	}
	if !match {
		return false, fmt.Sprintf("No match found for '%s'; closest candidate '%s'", m.Expression, candidate)
	}
	return true, fmt.Sprintf("Rendered equation '%s' matches '%s'", candidate, m.Expression)
}

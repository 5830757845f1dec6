package assertions

import "github.com/abdul-hamid-achik/pagespec/packages/table"

// Table is the payload of table assertions. Empty relation fields are not
// checked.
type Table struct {
	Cell        string `json:"cell" validate:"required,notblank"`
	Up          string `json:"up"`
	Down        string `json:"down"`
	Left        string `json:"left"`
	Right       string `json:"right"`
	TopHeading  string `json:"top_heading"`
	LeftHeading string `json:"left_heading"`
}

func (t *Table) run(a *Assertion, haystack string) (bool, string) {
	return table.Evaluate(haystack, table.Query{
		Cell:        t.Cell,
		MaxDiffs:    a.MaxDiffs,
		Up:          t.Up,
		Down:        t.Down,
		Left:        t.Left,
		Right:       t.Right,
		TopHeading:  t.TopHeading,
		LeftHeading: t.LeftHeading,
	})
}

package table

import (
	"fmt"

	"github.com/abdul-hamid-achik/pagespec/packages/fuzzy"
	"github.com/abdul-hamid-achik/pagespec/packages/normalize"
)

// Query describes a target cell and the neighbours it is expected to have.
// Empty relation fields are not checked.
type Query struct {
	Cell        string
	MaxDiffs    int
	Up          string
	Down        string
	Left        string
	Right       string
	TopHeading  string
	LeftHeading string
}

// relation is one neighbour lookup relative to a cell position.
type relation struct {
	name     string
	expected string
	locate   func(r, c int) (int, int)
}

func (q Query) relations() []relation {
	return []relation{
		{"up", q.Up, func(r, c int) (int, int) { return r - 1, c }},
		{"down", q.Down, func(r, c int) (int, int) { return r + 1, c }},
		{"left", q.Left, func(r, c int) (int, int) { return r, c - 1 }},
		{"right", q.Right, func(r, c int) (int, int) { return r, c + 1 }},
		{"top_heading", q.TopHeading, func(r, c int) (int, int) {
			if r == 0 {
				return -1, c
			}
			return 0, c
		}},
		{"left_heading", q.LeftHeading, func(r, c int) (int, int) {
			if c == 0 {
				return r, -1
			}
			return r, 0
		}},
	}
}

// Evaluate extracts the tables in text and checks q against them.
func Evaluate(text string, q Query) (bool, string) {
	return Check(Extract(text), q)
}

// Check locates q.Cell in tables, first match in row-major order over the
// tables in order, and verifies every requested relation of that cell.
func Check(tables []Grid, q Query) (bool, string) {
	if len(tables) == 0 {
		return false, "No tables found in the content"
	}

	opts := fuzzy.Options{MaxDiffs: q.MaxDiffs}
	target := normalize.Text(q.Cell)

	for _, g := range tables {
		for r := 0; r < g.Rows(); r++ {
			for c := 0; c < g.Cols(); c++ {
				if !fuzzy.Contains(normalize.Text(g.At(r, c)), target, opts) {
					continue
				}
				return checkRelations(g, r, c, q, opts)
			}
		}
	}
	return false, fmt.Sprintf("No cell matching '%s' found in any table", q.Cell)
}

func checkRelations(g Grid, r, c int, q Query, opts fuzzy.Options) (bool, string) {
	for _, rel := range q.relations() {
		if rel.expected == "" {
			continue
		}
		nr, nc := rel.locate(r, c)
		if !g.inRange(nr, nc) {
			return false, fmt.Sprintf("Cell '%s' has no cell %s (out of range)", q.Cell, rel.name)
		}
		actual := g.At(nr, nc)
		if !fuzzy.Contains(normalize.Text(actual), normalize.Text(rel.expected), opts) {
			return false, fmt.Sprintf("%s cell '%s' doesn't match expected '%s'", rel.name, actual, rel.expected)
		}
	}
	return true, fmt.Sprintf("Cell '%s' found with all expected relationships", q.Cell)
}

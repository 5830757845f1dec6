package table

// Grid is a rectangular array of cell strings.
type Grid struct {
	cells [][]string
	cols  int
}

// NewGrid builds a grid from rows, padding short rows with empty cells.
func NewGrid(rows [][]string) Grid {
	cols := 0
	for _, row := range rows {
		cols = max(cols, len(row))
	}
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = make([]string, cols)
		copy(cells[i], row)
	}
	return Grid{cells: cells, cols: cols}
}

// Rows returns the number of rows.
func (g Grid) Rows() int { return len(g.cells) }

// Cols returns the number of columns.
func (g Grid) Cols() int { return g.cols }

// At returns the cell at row r, column c.
func (g Grid) At(r, c int) string { return g.cells[r][c] }

// Cells returns a copy of the grid contents.
func (g Grid) Cells() [][]string {
	out := make([][]string, len(g.cells))
	for i, row := range g.cells {
		out[i] = append([]string(nil), row...)
	}
	return out
}

func (g Grid) inRange(r, c int) bool {
	return r >= 0 && r < g.Rows() && c >= 0 && c < g.Cols()
}

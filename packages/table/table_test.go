package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const markdownTable = `
| Header 1 | Header 2 | Header 3 |
| -------- | -------- | -------- |
| Cell A1  | Cell A2  | Cell A3  |
| Cell B1  | Cell B2  | Cell B3  |
`

const htmlTable = `
<table>
  <tr>
    <th>Header 1</th>
    <th>Header 2</th>
    <th>Header 3</th>
  </tr>
  <tr>
    <td>Cell A1</td>
    <td>Cell A2</td>
    <td>Cell A3</td>
  </tr>
  <tr>
    <td>Cell B1</td>
    <td>Cell B2</td>
    <td>Cell B3</td>
  </tr>
</table>
`

func TestParseMarkdown(t *testing.T) {
	tables := ParseMarkdown(markdownTable)
	require.Len(t, tables, 1)

	g := tables[0]
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, "Header 1", g.At(0, 0))
	assert.Equal(t, "Cell A2", g.At(1, 1))
	assert.Equal(t, "Cell B3", g.At(2, 2))
}

func TestParseHTML(t *testing.T) {
	tables := ParseHTML(htmlTable)
	require.Len(t, tables, 1)

	g := tables[0]
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, "Header 1", g.At(0, 0))
	assert.Equal(t, "Cell A2", g.At(1, 1))
	assert.Equal(t, "Cell B3", g.At(2, 2))
}

func TestParseHTML_UppercaseTags(t *testing.T) {
	tables := ParseHTML("<TABLE><TR><TD>a</TD><TD>b</TD></TR><TR><TD>c</TD></TR></TABLE>")
	require.Len(t, tables, 1)
	assert.Equal(t, [][]string{{"a", "b"}, {"c", ""}}, tables[0].Cells())
}

func TestParseHTML_NestedTables(t *testing.T) {
	text := `<table>
<tr><td>outer 1</td><td><table><tr><td>inner</td></tr></table></td></tr>
<tr><td>outer 2</td><td>x</td></tr>
</table>`
	tables := ParseHTML(text)
	require.Len(t, tables, 2)
	assert.Equal(t, 2, tables[0].Rows())
	assert.Equal(t, "outer 2", tables[0].At(1, 0))
	assert.Equal(t, [][]string{{"inner"}}, tables[1].Cells())
}

func TestParseHTML_MergedCell(t *testing.T) {
	tables := ParseHTML(`<table><tr><td colspan="2">wide</td></tr><tr><td>a</td><td>b</td></tr></table>`)
	require.Len(t, tables, 1)
	assert.Equal(t, [][]string{{"wide", ""}, {"a", "b"}}, tables[0].Cells())
}

func TestParseMarkdown_Ragged(t *testing.T) {
	text := "a | b | c\n---|:---:|---\n1 | 2\n4 | 5 | 6 | 7\n"
	tables := ParseMarkdown(text)
	require.Len(t, tables, 1)
	assert.Equal(t, [][]string{
		{"a", "b", "c", ""},
		{"1", "2", "", ""},
		{"4", "5", "6", "7"},
	}, tables[0].Cells())
}

func TestParseMarkdown_EscapedPipe(t *testing.T) {
	tables := ParseMarkdown("| op | meaning |\n|---|---|\n| a \\| b | or |\n")
	require.Len(t, tables, 1)
	assert.Equal(t, "a | b", tables[0].At(1, 0))
}

func TestParseMarkdown_RequiresSeparator(t *testing.T) {
	assert.Empty(t, ParseMarkdown("| just | pipes |\n| more | pipes |\n"))
}

func TestParseMarkdown_MultipleTables(t *testing.T) {
	text := markdownTable + "\nSome prose in between.\n\n| x | y |\n|---|---|\n| 1 | 2 |\n"
	tables := ParseMarkdown(text)
	require.Len(t, tables, 2)
	assert.Equal(t, "y", tables[1].At(0, 1))
}

func TestExtract_NoTables(t *testing.T) {
	assert.Empty(t, Extract("This is plain text with no tables"))
}

func TestExtract_Both(t *testing.T) {
	tables := Extract(markdownTable + htmlTable)
	require.Len(t, tables, 2)
	assert.Equal(t, tables[0].Cells(), tables[1].Cells())
}

func TestCheck_Relations(t *testing.T) {
	tests := []struct {
		name   string
		query  Query
		passed bool
		reason string
	}{
		{name: "cell only", query: Query{Cell: "Cell A2"}, passed: true},
		{name: "up", query: Query{Cell: "Cell A2", Up: "Header 2"}, passed: true},
		{name: "down", query: Query{Cell: "Cell A2", Down: "Cell B2"}, passed: true},
		{name: "left", query: Query{Cell: "Cell A2", Left: "Cell A1"}, passed: true},
		{name: "right", query: Query{Cell: "Cell A2", Right: "Cell A3"}, passed: true},
		{name: "top heading", query: Query{Cell: "Cell B2", TopHeading: "Header 2"}, passed: true},
		{name: "left heading", query: Query{Cell: "Cell A3", LeftHeading: "Cell A1"}, passed: true},
		{name: "wrong up", query: Query{Cell: "Cell A2", Up: "Wrong Header"}, reason: "up"},
		{name: "wrong down", query: Query{Cell: "Cell A2", Down: "Wrong Cell"}, reason: "down"},
		{name: "wrong left", query: Query{Cell: "Cell A2", Left: "Wrong Cell"}, reason: "left"},
		{name: "wrong right", query: Query{Cell: "Cell A2", Right: "Wrong Cell"}, reason: "right"},
		{name: "wrong top heading", query: Query{Cell: "Cell B2", TopHeading: "Wrong Header"}, reason: "top_heading"},
		{name: "wrong left heading", query: Query{Cell: "Cell A3", LeftHeading: "Wrong Cell"}, reason: "left_heading"},
		{
			name:   "all relations",
			query:  Query{Cell: "Cell A2", Up: "Header 2", Down: "Cell B2", Left: "Cell A1", Right: "Cell A3"},
			passed: true,
		},
		{
			name:   "one bad relation",
			query:  Query{Cell: "Cell A2", Up: "Header 2", Down: "Cell B2", Left: "Wrong Cell", Right: "Cell A3"},
			reason: "left",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			passed, explanation := Evaluate(markdownTable, tt.query)
			assert.Equal(t, tt.passed, passed, explanation)
			if !tt.passed {
				assert.Contains(t, explanation, "doesn't match expected")
				assert.True(t, strings.HasPrefix(explanation, tt.reason+" "), explanation)
			}
		})
	}
}

func TestCheck_EveryDirectionOnThreeByThree(t *testing.T) {
	g := NewGrid([][]string{
		{"a", "b", "c"},
		{"d", "e", "f"},
		{"g", "h", "i"},
	})
	q := Query{Cell: "e", Up: "b", Down: "h", Left: "d", Right: "f", TopHeading: "b", LeftHeading: "d"}
	passed, explanation := Check([]Grid{g}, q)
	assert.True(t, passed, explanation)

	passed, _ = Check([]Grid{g}, Query{Cell: "i", TopHeading: "c", LeftHeading: "g"})
	assert.True(t, passed)
}

func TestCheck_OutOfRange(t *testing.T) {
	g := NewGrid([][]string{
		{"a", "b", "c"},
		{"d", "e", "f"},
		{"g", "h", "i"},
	})
	tests := []struct {
		query    Query
		relation string
	}{
		{Query{Cell: "b", Up: "x"}, "up"},
		{Query{Cell: "h", Down: "x"}, "down"},
		{Query{Cell: "d", Left: "x"}, "left"},
		{Query{Cell: "f", Right: "x"}, "right"},
		{Query{Cell: "c", TopHeading: "x"}, "top_heading"},
		{Query{Cell: "g", LeftHeading: "x"}, "left_heading"},
	}
	for _, tt := range tests {
		t.Run(tt.relation, func(t *testing.T) {
			passed, explanation := Check([]Grid{g}, tt.query)
			assert.False(t, passed)
			assert.Contains(t, explanation, "no cell "+tt.relation)
			assert.Contains(t, explanation, "out of range")
		})
	}
}

func TestCheck_NotFound(t *testing.T) {
	passed, explanation := Evaluate(markdownTable, Query{Cell: "Missing Cell"})
	assert.False(t, passed)
	assert.Contains(t, explanation, "No cell matching")
}

func TestCheck_NoTables(t *testing.T) {
	passed, explanation := Evaluate("This is plain text with no tables", Query{Cell: "Cell A2"})
	assert.False(t, passed)
	assert.Equal(t, "No tables found in the content", explanation)
}

func TestCheck_Fuzzy(t *testing.T) {
	text := strings.Replace(markdownTable, "Cell A2", "Cel A2", 1)

	passed, _ := Evaluate(text, Query{Cell: "Cell A2", MaxDiffs: 1})
	assert.True(t, passed)

	passed, _ = Evaluate(text, Query{Cell: "Cell A2"})
	assert.False(t, passed)
}

func TestCheck_CaseInsensitive(t *testing.T) {
	passed, _ := Evaluate(htmlTable, Query{Cell: "cell a2", Up: "HEADER 2"})
	assert.True(t, passed)
}

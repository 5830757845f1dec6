package table

import "strings"

// ParseMarkdown extracts pipe-delimited Markdown tables. A table needs a
// header row directly followed by a separator row such as |---|:--:|.
func ParseMarkdown(text string) []Grid {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	var tables []Grid
	for i := 0; i < len(lines); {
		if !isRow(lines[i]) || i+1 >= len(lines) || !isSeparator(lines[i+1]) {
			i++
			continue
		}

		rows := [][]string{splitRow(lines[i])}
		j := i + 2
		for ; j < len(lines) && isRow(lines[j]); j++ {
			if isSeparator(lines[j]) {
				continue
			}
			rows = append(rows, splitRow(lines[j]))
		}
		tables = append(tables, NewGrid(rows))
		i = j
	}
	return tables
}

func isRow(line string) bool {
	return strings.Contains(line, "|")
}

func isSeparator(line string) bool {
	if !isRow(line) {
		return false
	}
	cells := splitRow(line)
	if len(cells) == 0 {
		return false
	}
	for _, cell := range cells {
		dashes := strings.TrimSuffix(strings.TrimPrefix(cell, ":"), ":")
		if dashes == "" || strings.Trim(dashes, "-") != "" {
			return false
		}
	}
	return true
}

// splitRow splits one table line into trimmed cells. Outer pipes are
// optional and \| is a literal pipe inside a cell.
func splitRow(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	if !strings.HasSuffix(line, `\|`) {
		line = strings.TrimSuffix(line, "|")
	}

	var cells []string
	var cell strings.Builder
	for i := 0; i < len(line); i++ {
		switch {
		case line[i] == '\\' && i+1 < len(line) && line[i+1] == '|':
			cell.WriteByte('|')
			i++
		case line[i] == '|':
			cells = append(cells, strings.TrimSpace(cell.String()))
			cell.Reset()
		default:
			cell.WriteByte(line[i])
		}
	}
	return append(cells, strings.TrimSpace(cell.String()))
}

package table

// Extract returns every Markdown table followed by every HTML table found
// in text. Text without a parseable table yields an empty slice.
func Extract(text string) []Grid {
	tables := ParseMarkdown(text)
	return append(tables, ParseHTML(text)...)
}

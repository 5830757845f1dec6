package table

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/abdul-hamid-achik/pagespec/packages/normalize"
)

// ParseHTML extracts every <table> element. Rows of a nested table belong
// to the nested table only.
func ParseHTML(text string) []Grid {
	if !strings.Contains(strings.ToLower(text), "<table") {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return nil
	}

	var tables []Grid
	doc.Find("table").Each(func(_ int, tbl *goquery.Selection) {
		var rows [][]string
		tbl.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			if !ownedBy(tr, tbl) {
				return
			}
			var row []string
			tr.ChildrenFiltered("th,td").Each(func(_ int, cell *goquery.Selection) {
				row = append(row, normalize.Text(cell.Text()))
			})
			rows = append(rows, row)
		})
		if len(rows) > 0 {
			tables = append(tables, NewGrid(rows))
		}
	})
	return tables
}

// ownedBy reports whether the nearest enclosing table of tr is tbl.
func ownedBy(tr, tbl *goquery.Selection) bool {
	for n := tr.Get(0).Parent; n != nil; n = n.Parent {
		if n.Type == html.ElementNode && n.Data == "table" {
			return n == tbl.Get(0)
		}
	}
	return false
}

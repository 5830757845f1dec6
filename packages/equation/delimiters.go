package equation

import "strings"

// Delimiter is an opening/closing pair that marks inline or display math.
type Delimiter struct {
	Open  string `json:"open" yaml:"open"`
	Close string `json:"close" yaml:"close"`
}

// DefaultDelimiters lists the recognized math delimiters in priority order.
// $$ must precede $ so display math is not read as two empty inline spans.
var DefaultDelimiters = []Delimiter{
	{Open: "$$", Close: "$$"},
	{Open: "$", Close: "$"},
	{Open: `\(`, Close: `\)`},
	{Open: `\[`, Close: `\]`},
}

// FindDelimited returns the body of the first non-empty span enclosed by a
// delimiter pair, trying pairs in the given order.
func FindDelimited(text string, delims []Delimiter) (string, bool) {
	for _, d := range delims {
		if body, ok := findPair(text, d); ok {
			return body, true
		}
	}
	return "", false
}

func findPair(text string, d Delimiter) (string, bool) {
	offset := 0
	for {
		open := strings.Index(text[offset:], d.Open)
		if open < 0 {
			return "", false
		}
		start := offset + open + len(d.Open)
		end := strings.Index(text[start:], d.Close)
		if end < 0 {
			return "", false
		}
		if body := strings.TrimSpace(text[start : start+end]); body != "" {
			return body, true
		}
		offset = start
	}
}

package normalize

import "strings"

// Replacements maps typographic characters to their ASCII equivalents.
// Every replacement is pure ASCII so normalizing twice is a no-op.
var Replacements = map[string]string{
	// Quotes and primes
	"\u2018": "'", // left single quotation mark
	"\u2019": "'", // right single quotation mark
	"\u201a": "'", // single low-9 quotation mark
	"\u201b": "'",
	"\u2032": "'", // prime
	"\u201c": "\"",
	"\u201d": "\"",
	"\u201e": "\"",
	"\u201f": "\"",
	"\u2033": "\"", // double prime
	"\u00ab": "\"",
	"\u00bb": "\"",

	// Dashes
	"\u2010": "-",
	"\u2011": "-", // non-breaking hyphen
	"\u2012": "-", // figure dash
	"\u2013": "-", // en dash
	"\u2014": "-", // em dash
	"\u2015": "-", // horizontal bar
	"\u2212": "-", // minus sign

	"\u2026": "...",

	// Spaces
	"\u00a0": " ", // no-break space
	"\u2002": " ",
	"\u2003": " ",
	"\u2009": " ", // thin space
	"\u202f": " ", // narrow no-break space
	"\u200b": "",  // zero width space
	"\ufeff": "",

	// Ligatures
	"\ufb00": "ff",
	"\ufb01": "fi",
	"\ufb02": "fl",
	"\ufb03": "ffi",
	"\ufb04": "ffl",
	"\ufb05": "st",
	"\ufb06": "st",
}

var replacer = newReplacer()

func newReplacer() *strings.Replacer {
	pairs := make([]string, 0, len(Replacements)*2)
	for from, to := range Replacements {
		pairs = append(pairs, from, to)
	}
	return strings.NewReplacer(pairs...)
}

// Text returns s with typographic punctuation mapped to ASCII and all
// whitespace runs collapsed to single spaces.
func Text(s string) string {
	if s == "" {
		return ""
	}
	s = replacer.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

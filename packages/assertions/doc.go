// Package assertions evaluates benchmark assertions against the text an
// extraction pipeline produced for one page of a document.
//
// Supported assertion kinds:
//   - present / absent: a string does or does not occur (fuzzy, windowed)
//   - order: one string occurs before another
//   - table: a cell exists in a table with the expected neighbours
//   - baseline: the page is non-empty, uses allowed characters and does
//     not degenerate into repeated n-grams
//   - math: a delimited equation matches the expected expression
//
// Assertions are validated once at construction and may then be run any
// number of times against different pages. Run never fails for reasons
// that depend on the page; it reports a pass/fail verdict with an
// explanation.
package assertions

// Package normalize canonicalizes extracted page text before comparison.
//
// Normalization:
//   - Collapses whitespace runs (spaces, tabs, newlines) to a single space
//   - Trims leading and trailing whitespace
//   - Maps typographic punctuation (curly quotes, dashes, ellipsis,
//     non-breaking spaces, ligatures) to ASCII equivalents
package normalize

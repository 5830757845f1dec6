// Package table extracts tables from extraction output and checks the
// spatial relationships between their cells.
//
// Supported table syntaxes:
//   - Pipe-delimited Markdown tables (header row, separator row, data rows)
//   - HTML tables (table/tr/th/td, tags matched case-insensitively)
//
// Every table becomes a dense Grid of trimmed cell strings. Merged source
// cells become a single grid entry and ragged rows are padded with empty
// strings to the widest row.
package table

// Package matrix holds the score tables that drive cluster assignment.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 table with bounds-checked At/Set.
//   - FromRows, which ingests a [][]float64 (possibly empty) and rejects
//     ragged or non-finite input.
//   - Package-level sentinel errors and a few shared validators.
//
// A similarity matrix has one row per cluster of the first collection and one
// column per cluster of the second. It is built once, consumed by the
// assignment strategies in package assign, and discarded.
//
// Complexity: At/Set O(1); FromRows and Clone O(rows*cols).
package matrix

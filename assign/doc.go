// Package assign proposes one-to-one pairings between two collections of
// clusters from a similarity matrix.
//
// Two strategies are provided, selected by the Strategy tagged variant:
//
//   - GreedyAssignment (MaximizedMapping, Greedy): sort every cell by value, highest
//     first, and accept a cell whenever its row and column are both still
//     free. Not always optimal; kept for speed and for its reproducible
//     tie-breaking (row-major order among equal values).
//     Complexity: O(rc·log(rc)) time, O(rc) memory.
//
//   - OptimalAssignment (Hungarian): Kuhn–Munkres with potentials; maximises the total
//     value over all min(r, c)-sized matchings.
//     Complexity: O(min(r,c)²·max(r,c)) time, O(r·c) memory.
//
// Both return []Triple with no row and no column used twice. An empty matrix
// (zero rows or zero columns) yields an empty result and no error.
//
// Example:
//
//	scores := [][]float64{{4, 1, 10}, {7, 4, 2}, {20, 4, 15}}
//	pairs, _ := assign.MaximizedMapping(scores)
//	// pairs == [{2 0 20} {0 2 10} {1 1 4}]
package assign

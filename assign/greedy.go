package assign

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/authorid/matrix"
)

const opGreedy = "Greedy"

// panicGreedyExhausted marks a scan that ended with a free row and a free
// column both left. Every cell is visited, so this cannot happen.
const panicGreedyExhausted = "assign: greedy scan ended with a free row and a free column"

// MaximizedMapping is Greedy over a list of rows.
//
// scores[i][j] is the similarity between cluster i of the first collection
// and cluster j of the second. nil, [] and [[]] give an empty result.
//
// Errors:
//   - matrix.ErrDimensionMismatch when rows have different lengths.
//   - matrix.ErrNaNInf when a score is not finite.
func MaximizedMapping(scores [][]float64) ([]Triple, error) {
	m, err := matrix.FromRows(scores)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opGreedy, err)
	}

	return Greedy(m)
}

// Greedy returns a high-value one-to-one partial mapping between the rows
// and columns of m. It is not guaranteed to be the maximum-weight matching.
//
// Steps:
//  1. Zero rows or zero columns: return an empty result.
//  2. Flatten every cell into (row, col, value), rows in order then columns
//     in order.
//  3. Stable sort by value descending, so equal values keep row-major order.
//  4. Scan: accept a cell when its row and column are both free, marking
//     them used; stop as soon as free rows or free columns run out.
//
// The result is in acceptance order (non-increasing Value).
//
// Complexity: O(rc·log(rc)) time, O(rc) memory.
func Greedy(m matrix.Matrix) ([]Triple, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opGreedy, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if rows == 0 || cols == 0 {
		return []Triple{}, nil
	}
	if err := matrix.ValidateFinite(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opGreedy, err)
	}

	// 2. Flatten in row-major order.
	cells, err := flatten(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opGreedy, err)
	}

	// 3. Highest first; ties keep enumeration order.
	sort.SliceStable(cells, func(i, j int) bool {
		return cells[i].Value > cells[j].Value
	})

	// 4. Scan.
	usedRow := make([]bool, rows)
	usedCol := make([]bool, cols)
	freeRows, freeCols := rows, cols
	result := make([]Triple, 0, min(rows, cols))
	for _, c := range cells {
		if usedRow[c.Row] || usedCol[c.Col] {
			continue
		}
		usedRow[c.Row] = true
		usedCol[c.Col] = true
		freeRows--
		freeCols--
		result = append(result, c)
		if freeRows == 0 || freeCols == 0 {
			return result, nil
		}
	}

	panic(panicGreedyExhausted)
}

// flatten lists every cell of m in row-major order.
// *Dense is walked through Do; other implementations through At.
func flatten(m matrix.Matrix) ([]Triple, error) {
	rows, cols := m.Rows(), m.Cols()
	cells := make([]Triple, 0, rows*cols)

	if d, ok := m.(*matrix.Dense); ok {
		d.Do(func(i, j int, v float64) bool {
			cells = append(cells, Triple{Row: i, Col: j, Value: v})

			return true
		})

		return cells, nil
	}

	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			cells = append(cells, Triple{Row: i, Col: j, Value: v})
		}
	}

	return cells, nil
}

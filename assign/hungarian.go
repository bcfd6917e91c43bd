package assign

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/authorid/matrix"
)

const opHungarian = "Hungarian"

// Hungarian returns a maximum-total one-to-one mapping between the rows and
// columns of m, pairing exactly min(rows, cols) of them.
//
// It is the exact counterpart of Greedy, kept as a separately named strategy
// so that callers relying on greedy tie-breaking are never affected.
//
// Implementation:
//   - Stage 1: read m into a cost table with the shorter side as rows,
//     cost = -value (maximise value = minimise cost).
//   - Stage 2: Kuhn–Munkres with row/column potentials (u, v) and augmenting
//     paths found by a Dijkstra-like sweep over columns.
//   - Stage 3: map the assignment back to the original orientation and
//     return it ordered by row.
//
// Complexity: O(n²·k) time for n = min(rows, cols), k = max(rows, cols);
// O(n·k) memory.
func Hungarian(m matrix.Matrix) ([]Triple, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opHungarian, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if rows == 0 || cols == 0 {
		return []Triple{}, nil
	}
	if err := matrix.ValidateFinite(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opHungarian, err)
	}

	// Stage 1: cost[i][j] is 1-based to leave index 0 as the virtual source.
	transposed := rows > cols
	n, k := rows, cols
	if transposed {
		n, k = cols, rows
	}
	cost := make([][]float64, n+1)
	value := make([][]float64, n+1)
	var i, j int
	for i = 1; i <= n; i++ {
		cost[i] = make([]float64, k+1)
		value[i] = make([]float64, k+1)
		for j = 1; j <= k; j++ {
			r, c := i-1, j-1
			if transposed {
				r, c = c, r
			}
			v, err := m.At(r, c)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", opHungarian, err)
			}
			value[i][j] = v
			cost[i][j] = -v
		}
	}

	// Stage 2: p[j] is the row matched to column j (0 = none).
	p := solveMinCost(cost, n, k)

	// Stage 3.
	out := make([]Triple, 0, n)
	for j = 1; j <= k; j++ {
		if p[j] == 0 {
			continue
		}
		r, c := p[j]-1, j-1
		v := value[p[j]][j]
		if transposed {
			r, c = c, r
		}
		out = append(out, Triple{Row: r, Col: c, Value: v})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Row < out[b].Row })

	return out, nil
}

// solveMinCost assigns each of the n rows of cost (1-based, n <= k) to a
// distinct column minimising the total cost. It returns p where p[j] is the
// row assigned to column j, or 0.
func solveMinCost(cost [][]float64, n, k int) []int {
	inf := math.Inf(1)
	u := make([]float64, n+1)
	v := make([]float64, k+1)
	p := make([]int, k+1)
	way := make([]int, k+1)
	minv := make([]float64, k+1)
	used := make([]bool, k+1)

	var i, j, i0, j0, j1 int
	var delta, cur float64
	for i = 1; i <= n; i++ {
		p[0] = i
		j0 = 0
		for j = 0; j <= k; j++ {
			minv[j] = inf
			used[j] = false
		}
		// Grow the alternating tree until a free column is reached.
		for {
			used[j0] = true
			i0 = p[j0]
			delta = inf
			j1 = 0
			for j = 1; j <= k; j++ {
				if used[j] {
					continue
				}
				cur = cost[i0][j] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j = 0; j <= k; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}
		// Flip the augmenting path.
		for j0 != 0 {
			j1 = way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	return p
}

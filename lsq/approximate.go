package lsq

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors. Wrap with context; match with errors.Is.
var (
	// ErrLengthMismatch indicates xs and ys of different length (caller bug).
	ErrLengthMismatch = errors.New("lsq: xs and ys differ in length")

	// ErrNaNInf indicates a NaN or ±Inf sample.
	ErrNaNInf = errors.New("lsq: NaN or Inf sample")

	// ErrSingular indicates (near-)singular normal equations: fewer than
	// three distinct x values, or samples too close together for the pivot
	// tolerance.
	ErrSingular = errors.New("lsq: singular normal equations")
)

const opApproximate = "Approximate"

// panicPowerSum guards the power-sum accumulation: Σx⁰ must equal the sample count.
const panicPowerSum = "lsq: power sum of order 0 does not match the sample count"

// Quadratic is a fitted curve y = A + B·x + C·x².
type Quadratic struct {
	A, B, C float64
}

// Eval returns A + B·x + C·x².
func (q Quadratic) Eval(x float64) float64 { return q.A + q.B*x + q.C*x*x }

// Coefficients returns [A, B, C].
func (q Quadratic) Coefficients() [3]float64 { return [3]float64{q.A, q.B, q.C} }

// String renders the curve for diagnostics.
func (q Quadratic) String() string {
	return fmt.Sprintf("%g + %g*x + %g*x^2", q.A, q.B, q.C)
}

// Approximate fits y ≈ a + b·x + c·x² to the samples (xs[i], ys[i]).
//
// Steps:
//  1. len(xs) must equal len(ys); never truncates.
//  2. Fewer than three distinct x values fail with ErrSingular.
//  3. Shift x by its mean m (t = x - m) and accumulate Σtᵏ for k = 0..4 and
//     Σy·tᵏ for k = 0..2, rejecting non-finite samples.
//  4. Build the augmented normal system
//     | Σt⁰ Σt¹ Σt² | Σy    |
//     | Σt¹ Σt² Σt³ | Σy·t  |
//     | Σt² Σt³ Σt⁴ | Σy·t² |
//  5. Gauss–Jordan: for each column unify the pivot row, then eliminate the
//     column from the other rows. A pivot within the relative tolerance of
//     zero fails with ErrSingular.
//  6. Expand a' + b'·t + c'·t² back to the x basis.
//
// After the shift the power sums of offset data (years, timestamps) scale
// with the spread of x, not with its magnitude.
//
// The system matrix is symmetric positive semi-definite, so elimination runs
// without row exchanges.
//
// Complexity: O(n) time, O(1) memory.
func Approximate(xs, ys []float64, opts ...Option) (Quadratic, error) {
	if len(xs) != len(ys) {
		return Quadratic{}, fmt.Errorf("%s: len(xs)=%d, len(ys)=%d: %w",
			opApproximate, len(xs), len(ys), ErrLengthMismatch)
	}
	o := gatherOptions(opts...)

	var (
		i, k   int
		x, y   float64
		mean   float64
		t, tk  float64
		pow    [5]float64 // Σtᵏ
		mom    [3]float64 // Σy·tᵏ
		system [3][4]float64
	)
	for i = range xs {
		x, y = xs[i], ys[i]
		if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
			return Quadratic{}, fmt.Errorf("%s: sample %d: %w", opApproximate, i, ErrNaNInf)
		}
		mean += x
	}
	if n := countDistinct(xs); n < 3 {
		return Quadratic{}, fmt.Errorf("%s: %d distinct x values: %w", opApproximate, n, ErrSingular)
	}
	mean /= float64(len(xs))

	for i = range xs {
		t, y = xs[i]-mean, ys[i]
		tk = 1
		for k = 0; k < len(pow); k++ {
			pow[k] += tk
			if k < len(mom) {
				mom[k] += y * tk
			}
			tk *= t
		}
	}
	if pow[0] != float64(len(ys)) {
		panic(panicPowerSum)
	}

	for i = 0; i < 3; i++ {
		system[i] = [4]float64{pow[i], pow[i+1], pow[i+2], mom[i]}
	}
	if err := gaussJordan(&system, o.pivotTol); err != nil {
		return Quadratic{}, fmt.Errorf("%s: %w", opApproximate, err)
	}

	return unshift(system[0][3], system[1][3], system[2][3], mean), nil
}

// countDistinct returns the number of distinct values in xs, capped at 3.
func countDistinct(xs []float64) int {
	var seen [3]float64
	n := 0
next:
	for _, x := range xs {
		for j := 0; j < n; j++ {
			if seen[j] == x {
				continue next
			}
		}
		seen[n] = x
		n++
		if n == len(seen) {
			break
		}
	}

	return n
}

// unshift rewrites a + b·(x-m) + c·(x-m)² as A + B·x + C·x².
func unshift(a, b, c, m float64) Quadratic {
	return Quadratic{
		A: a - b*m + c*m*m,
		B: b - 2*c*m,
		C: c,
	}
}

// gaussJordan reduces the augmented 3×4 system in place to [I | solution].
func gaussJordan(sys *[3][4]float64, tol float64) error {
	diag := [3]float64{sys[0][0], sys[1][1], sys[2][2]}

	var k, r int
	for k = 0; k < 3; k++ {
		pivot := sys[k][k]
		// The negated comparison also rejects a NaN pivot.
		if !(math.Abs(pivot) > tol*math.Abs(diag[k])) {
			return fmt.Errorf("pivot %d = %g: %w", k, pivot, ErrSingular)
		}
		unifyRow(sys, k)
		for r = 0; r < 3; r++ {
			if r != k {
				eliminate(sys, r, k)
			}
		}
	}

	return nil
}

// unifyRow scales row k so that sys[k][k] == 1.
func unifyRow(sys *[3][4]float64, k int) {
	pivot := sys[k][k]
	for c := k; c < 4; c++ {
		sys[k][c] /= pivot
	}
	sys[k][k] = 1
}

// eliminate subtracts a multiple of the unified row k from row r so that sys[r][k] == 0.
func eliminate(sys *[3][4]float64, r, k int) {
	factor := sys[r][k]
	if factor == 0 {
		return
	}
	for c := k; c < 4; c++ {
		sys[r][c] -= factor * sys[k][c]
	}
	sys[r][k] = 0
}

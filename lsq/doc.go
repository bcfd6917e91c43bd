// Package lsq fits quadratic curves y ≈ a + b·x + c·x² by ordinary least squares.
//
// The fit shifts x by its mean and builds the 3×3 normal equations from power
// sums Σtᵏ (k = 0..4) and moments Σy·tᵏ (k = 0..2) of the shifted samples.
// It solves them with explicit Gauss–Jordan elimination on a fixed-size
// array: unify the pivot row to 1, then eliminate that column from the other
// two rows. The system is always 3×3, so no
// general-purpose solver is involved and nothing is heap-allocated. The
// solution is expanded back to coefficients of x.
//
// The fitted curves model decay or confidence profiles that feed the
// similarity scores used by the merge driver.
//
// Errors:
//   - ErrLengthMismatch: len(xs) != len(ys).
//   - ErrNaNInf:         a sample is NaN or ±Inf.
//   - ErrSingular:       fewer than three distinct x values (including no
//     samples), or a pivot under the relative tolerance.
//
// Complexity: O(n) for n samples, O(1) memory.
package lsq

package lsq

import "math"

// DefaultPivotTolerance is the relative threshold under which a pivot is
// treated as zero: |pivot| <= tol·|original diagonal entry|.
const DefaultPivotTolerance = 1e-12

const panicPivotTolerance = "lsq: WithPivotTolerance: tol must be finite and in [0, 1)"

// Options configures Approximate.
type Options struct {
	pivotTol float64
}

// Option mutates Options. Constructors panic on nonsensical values.
type Option func(*Options)

// WithPivotTolerance sets the relative singularity threshold.
// Zero only rejects exactly-zero pivots; fewer than three distinct x values
// are rejected regardless.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 || tol >= 1 {
		panic(panicPivotTolerance)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{pivotTol: DefaultPivotTolerance}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

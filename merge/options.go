package merge

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/authorid/assign"
)

// Defaults for Merge and MergeBlocks.
const (
	DefaultThreshold = 0.5
	DefaultStrategy  = assign.GreedyAssignment
	DefaultWorkers   = 4
)

const (
	panicThreshold = "merge: WithThreshold: threshold must be finite"
	panicStrategy  = "merge: WithStrategy: unknown strategy"
	panicWorkers   = "merge: WithWorkers: workers must be >= 1"
)

// Options configures a merge round.
type Options struct {
	threshold float64
	strategy  assign.Strategy
	workers   int
	logger    zerolog.Logger
}

// Option mutates Options. Constructors panic on nonsensical values.
type Option func(*Options)

// WithThreshold sets the minimum score a mapped pair needs to be merged.
// A pair scoring exactly the threshold is merged.
func WithThreshold(t float64) Option {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		panic(panicThreshold)
	}

	return func(o *Options) { o.threshold = t }
}

// WithStrategy selects the assignment strategy.
func WithStrategy(s assign.Strategy) Option {
	if s != assign.GreedyAssignment && s != assign.OptimalAssignment {
		panic(panicStrategy)
	}

	return func(o *Options) { o.strategy = s }
}

// WithWorkers bounds how many blocks MergeBlocks processes at once.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkers)
	}

	return func(o *Options) { o.workers = n }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		threshold: DefaultThreshold,
		strategy:  DefaultStrategy,
		workers:   DefaultWorkers,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

package merge

import (
	"fmt"
	"math"

	"github.com/katalvlaran/authorid/cluster"
	"github.com/katalvlaran/authorid/lsq"
)

// Scorer rates how likely two clusters are the same author.
// Values are expected in [0, 1]; NaN or ±Inf make Merge fail.
type Scorer interface {
	Score(a, b *cluster.Cluster) float64
}

// ScorerFunc adapts a plain function to Scorer.
type ScorerFunc func(a, b *cluster.Cluster) float64

// Score calls f(a, b).
func (f ScorerFunc) Score(a, b *cluster.Cluster) float64 { return f(a, b) }

// FittedScorer maps a raw pairwise feature through a fitted quadratic.
// The result is clamped to [0, 1]; a NaN curve value scores 0.
type FittedScorer struct {
	Curve   lsq.Quadratic
	Feature func(a, b *cluster.Cluster) float64
}

// NewFittedScorer fits Curve to the calibration samples (feature value xs[i],
// observed same-author rate ys[i]) and pairs it with feature.
func NewFittedScorer(xs, ys []float64, feature func(a, b *cluster.Cluster) float64, opts ...lsq.Option) (*FittedScorer, error) {
	if feature == nil {
		return nil, fmt.Errorf("NewFittedScorer: %w", ErrNilScorer)
	}
	q, err := lsq.Approximate(xs, ys, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewFittedScorer: %w", err)
	}

	return &FittedScorer{Curve: q, Feature: feature}, nil
}

// Score evaluates the curve at Feature(a, b).
func (s *FittedScorer) Score(a, b *cluster.Cluster) float64 {
	v := s.Curve.Eval(s.Feature(a, b))
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}

	return v
}

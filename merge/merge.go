package merge

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/authorid/assign"
	"github.com/katalvlaran/authorid/cluster"
	"github.com/katalvlaran/authorid/matrix"
)

// Sentinel errors.
var (
	// ErrNilSet indicates a nil base or incoming set.
	ErrNilSet = errors.New("merge: nil cluster set")

	// ErrSameSet indicates base and incoming are the same set.
	ErrSameSet = errors.New("merge: base and incoming are the same set")

	// ErrNilScorer indicates a nil Scorer or feature function.
	ErrNilScorer = errors.New("merge: nil scorer")

	// ErrSharedIDs indicates base and incoming hold a common signature id.
	ErrSharedIDs = errors.New("merge: base and incoming share signature ids")

	// ErrSharedSet indicates two blocks given to MergeBlocks use the same set.
	ErrSharedSet = errors.New("merge: blocks share a cluster set")

	// ErrCrossBlockHate indicates a cluster of one block hates a cluster
	// outside that block.
	ErrCrossBlockHate = errors.New("merge: hate relation crosses a block boundary")
)

const opMerge = "Merge"

// Decision labels used in debug logs.
const (
	decisionMerged = "merged"
	decisionHate   = "blocked_by_hate"
	decisionBelow  = "below_threshold"
)

// Report summarises one merge round.
type Report struct {
	Block          string // block name; empty for a direct Merge call
	Proposed       int    // pairs returned by the assignment
	Merged         int    // pairs actually merged
	BlockedByHate  int    // pairs skipped because the clusters hate each other
	BelowThreshold int    // pairs skipped because the score was too low
	Added          int    // incoming clusters that joined base unmerged

	// Assignments holds the proposed pairs: Row indexes base, Col indexes
	// incoming, both in the order the sets had before the round.
	Assignments []assign.Triple
}

// Merge folds incoming into base.
//
// Steps:
//  1. Score every (base[i], incoming[j]) pair into a len(base)×len(incoming)
//     matrix. ctx is checked before each row.
//  2. Map the matrix one-to-one with the configured strategy.
//  3. For each proposed pair, in assignment order: skip it when its score is
//     below the threshold or the clusters hate each other (as of that moment,
//     earlier merges included); otherwise remove the incoming cluster from
//     incoming and merge it into the base cluster.
//  4. Move every remaining incoming cluster into base, keeping their order.
//
// incoming ends empty; merged and moved clusters keep their hate relations.
//
// Errors (both sets untouched unless noted):
//   - ErrNilSet, ErrSameSet, ErrNilScorer, ErrSharedIDs.
//   - ctx.Err() when cancelled while scoring.
//   - matrix.ErrNaNInf when the scorer returns a non-finite value.
//   - An error from package cluster while applying decisions. Earlier
//     decisions of the round stay applied; the failing incoming cluster is
//     put back into incoming (at the end) unchanged.
func Merge(ctx context.Context, base, incoming *cluster.Set, scorer Scorer, opts ...Option) (Report, error) {
	o := gatherOptions(opts...)

	return mergeWith(ctx, base, incoming, scorer, o)
}

func mergeWith(ctx context.Context, base, incoming *cluster.Set, scorer Scorer, o Options) (Report, error) {
	var rep Report
	switch {
	case base == nil || incoming == nil:
		return rep, fmt.Errorf("%s: %w", opMerge, ErrNilSet)
	case base == incoming:
		return rep, fmt.Errorf("%s: %w", opMerge, ErrSameSet)
	case scorer == nil:
		return rep, fmt.Errorf("%s: %w", opMerge, ErrNilScorer)
	case base.Intersects(incoming):
		return rep, fmt.Errorf("%s: %w", opMerge, ErrSharedIDs)
	}

	dst := base.Clusters()
	src := incoming.Clusters()

	// 1. Score.
	m, err := scoreMatrix(ctx, dst, src, scorer)
	if err != nil {
		return rep, fmt.Errorf("%s: %w", opMerge, err)
	}

	// 2. Map.
	triples, err := assign.Map(m, o.strategy)
	if err != nil {
		return rep, fmt.Errorf("%s: %w", opMerge, err)
	}
	rep.Assignments = triples
	rep.Proposed = len(triples)

	// 3. Apply.
	for _, t := range triples {
		d, s := dst[t.Row], src[t.Col]
		ev := o.logger.Debug().Int("row", t.Row).Int("col", t.Col).Float64("score", t.Value)
		switch {
		case t.Value < o.threshold:
			rep.BelowThreshold++
			ev.Str("decision", decisionBelow).Msg("merge decision")
			continue
		case d.Hates(s):
			rep.BlockedByHate++
			ev.Str("decision", decisionHate).Msg("merge decision")
			continue
		}
		if err = moveInto(incoming, s, func() error { return base.Merge(d, s) }); err != nil {
			return rep, fmt.Errorf("%s: pair (%d,%d): %w", opMerge, t.Row, t.Col, err)
		}
		rep.Merged++
		ev.Str("decision", decisionMerged).Int("size", d.Len()).Msg("merge decision")
	}

	// 4. Adopt the leftovers.
	for _, s := range incoming.Clusters() {
		if err = moveInto(incoming, s, func() error { return base.Add(s) }); err != nil {
			return rep, fmt.Errorf("%s: adopt %v: %w", opMerge, s, err)
		}
		rep.Added++
	}

	o.logger.Info().
		Int("base", len(dst)).
		Int("incoming", len(src)).
		Str("strategy", o.strategy.String()).
		Int("proposed", rep.Proposed).
		Int("merged", rep.Merged).
		Int("blocked_by_hate", rep.BlockedByHate).
		Int("below_threshold", rep.BelowThreshold).
		Int("added", rep.Added).
		Msg("merge round done")

	return rep, nil
}

// scoreMatrix fills a len(dst)×len(src) table with scorer values.
// Either side empty gives a 0-row or 0-column matrix.
func scoreMatrix(ctx context.Context, dst, src []*cluster.Cluster, scorer Scorer) (*matrix.Dense, error) {
	if len(dst) == 0 || len(src) == 0 {
		return matrix.FromRows(make([][]float64, len(dst)))
	}
	m, err := matrix.NewDense(len(dst), len(src))
	if err != nil {
		return nil, err
	}
	for i, d := range dst {
		if err = ctx.Err(); err != nil {
			return nil, fmt.Errorf("scoring row %d: %w", i, err)
		}
		for j, s := range src {
			if err = m.Set(i, j, scorer.Score(d, s)); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// moveInto detaches s from incoming and runs attach, which hands s to the
// other set. If attach fails, s goes back to incoming.
func moveInto(incoming *cluster.Set, s *cluster.Cluster, attach func() error) error {
	if err := incoming.Remove(s); err != nil {
		return err
	}
	if err := attach(); err != nil {
		if rerr := incoming.Add(s); rerr != nil {
			return errors.Join(err, rerr)
		}

		return err
	}

	return nil
}

// blockLogger tags l with the block name.
func blockLogger(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("block", name).Logger()
}

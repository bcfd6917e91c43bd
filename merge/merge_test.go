package merge_test

import (
	"bytes"
	"context"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/authorid/assign"
	"github.com/katalvlaran/authorid/cluster"
	"github.com/katalvlaran/authorid/matrix"
	"github.com/katalvlaran/authorid/merge"
)

// table scores two clusters by their smallest ids; missing pairs score 0.
func table(t map[[2]uint32]float64) merge.Scorer {
	return merge.ScorerFunc(func(a, b *cluster.Cluster) float64 {
		return t[[2]uint32{a.Bibs()[0], b.Bibs()[0]}]
	})
}

type fixture struct {
	base, incoming *cluster.Set
	b0, b1         *cluster.Cluster
	i0, i1, i2     *cluster.Cluster
	scorer         merge.Scorer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		b0: cluster.New(1), b1: cluster.New(2),
		i0: cluster.New(10), i1: cluster.New(11), i2: cluster.New(12),
	}
	var err error
	f.base, err = cluster.NewSet(f.b0, f.b1)
	require.NoError(t, err)
	f.incoming, err = cluster.NewSet(f.i0, f.i1, f.i2)
	require.NoError(t, err)
	f.scorer = table(map[[2]uint32]float64{
		{1, 10}: 0.9, {1, 11}: 0.2,
		{2, 10}: 0.1, {2, 11}: 0.7,
	})

	return f
}

func TestMerge_EndToEnd(t *testing.T) {
	f := newFixture(t)

	rep, err := merge.Merge(context.Background(), f.base, f.incoming, f.scorer)
	require.NoError(t, err)

	assert.Equal(t, 2, rep.Proposed)
	assert.Equal(t, 2, rep.Merged)
	assert.Equal(t, 0, rep.BlockedByHate)
	assert.Equal(t, 0, rep.BelowThreshold)
	assert.Equal(t, 1, rep.Added)
	assert.Equal(t, []assign.Triple{{Row: 0, Col: 0, Value: 0.9}, {Row: 1, Col: 1, Value: 0.7}}, rep.Assignments)

	assert.Equal(t, 0, f.incoming.Len())
	assert.Equal(t, []*cluster.Cluster{f.b0, f.b1, f.i2}, f.base.Clusters())
	assert.Equal(t, []uint32{1, 10}, f.b0.Bibs())
	assert.Equal(t, []uint32{2, 11}, f.b1.Bibs())
	assert.Equal(t, []uint32{1, 2, 10, 11, 12}, f.base.AllBibs())
	assert.Zero(t, f.i0.Len(), "absorbed cluster is emptied")
	require.NoError(t, f.base.UpdateBibs())
}

func TestMerge_HateBlocks(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.b0.Quarrel(f.i0))

	rep, err := merge.Merge(context.Background(), f.base, f.incoming, f.scorer)
	require.NoError(t, err)

	assert.Equal(t, 1, rep.BlockedByHate)
	assert.Equal(t, 1, rep.Merged)
	assert.Equal(t, 2, rep.Added)
	assert.Equal(t, []uint32{1}, f.b0.Bibs())
	assert.True(t, f.base.Has(f.i0))
	assert.True(t, f.b0.Hates(f.i0), "hate survives the move into base")
}

func TestMerge_InheritsHate(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.i0.Quarrel(f.b1))

	_, err := merge.Merge(context.Background(), f.base, f.incoming, f.scorer)
	require.NoError(t, err)

	assert.True(t, f.b0.Hates(f.b1))
	assert.True(t, f.b1.Hates(f.b0))
	assert.False(t, f.b1.Hates(f.i0))
}

func TestMerge_Threshold(t *testing.T) {
	f := newFixture(t)

	rep, err := merge.Merge(context.Background(), f.base, f.incoming, f.scorer, merge.WithThreshold(0.8))
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Merged)
	assert.Equal(t, 1, rep.BelowThreshold)
	assert.Equal(t, 2, rep.Added)

	// A score equal to the threshold is merged.
	f = newFixture(t)
	rep, err = merge.Merge(context.Background(), f.base, f.incoming, f.scorer, merge.WithThreshold(0.7))
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Merged)
}

func TestMerge_Strategies(t *testing.T) {
	run := func(s assign.Strategy) merge.Report {
		b0, b1 := cluster.New(1), cluster.New(2)
		i0, i1 := cluster.New(10), cluster.New(11)
		base, err := cluster.NewSet(b0, b1)
		require.NoError(t, err)
		incoming, err := cluster.NewSet(i0, i1)
		require.NoError(t, err)
		sc := table(map[[2]uint32]float64{
			{1, 10}: 1.0, {1, 11}: 0.9,
			{2, 10}: 0.9, {2, 11}: 0,
		})
		rep, err := merge.Merge(context.Background(), base, incoming, sc, merge.WithStrategy(s))
		require.NoError(t, err)

		return rep
	}

	greedy := run(assign.GreedyAssignment)
	assert.Equal(t, 1, greedy.Merged)
	assert.Equal(t, 1, greedy.BelowThreshold)
	assert.Equal(t, 1, greedy.Added)

	optimal := run(assign.OptimalAssignment)
	assert.Equal(t, 2, optimal.Merged)
	assert.Equal(t, 0, optimal.Added)
}

func TestMerge_EmptySides(t *testing.T) {
	base, err := cluster.NewSet()
	require.NoError(t, err)
	incoming, err := cluster.NewSet(cluster.New(1), cluster.New(2))
	require.NoError(t, err)

	rep, err := merge.Merge(context.Background(), base, incoming, table(nil))
	require.NoError(t, err)
	assert.Equal(t, 0, rep.Proposed)
	assert.Equal(t, 2, rep.Added)
	assert.Equal(t, 2, base.Len())

	empty, err := cluster.NewSet()
	require.NoError(t, err)
	rep, err = merge.Merge(context.Background(), base, empty, table(nil))
	require.NoError(t, err)
	assert.Equal(t, merge.Report{Assignments: []assign.Triple{}}, rep)
	assert.Equal(t, 2, base.Len())
}

func TestMerge_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := merge.Merge(ctx, nil, f.incoming, f.scorer)
	assert.ErrorIs(t, err, merge.ErrNilSet)
	_, err = merge.Merge(ctx, f.base, f.base, f.scorer)
	assert.ErrorIs(t, err, merge.ErrSameSet)
	_, err = merge.Merge(ctx, f.base, f.incoming, nil)
	assert.ErrorIs(t, err, merge.ErrNilScorer)

	nan := merge.ScorerFunc(func(_, _ *cluster.Cluster) float64 { return math.NaN() })
	_, err = merge.Merge(ctx, f.base, f.incoming, nan)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = merge.Merge(cancelled, f.base, f.incoming, f.scorer)
	assert.ErrorIs(t, err, context.Canceled)

	// None of the above touched the sets.
	assert.Equal(t, 2, f.base.Len())
	assert.Equal(t, 3, f.incoming.Len())

	shared, err := cluster.NewSet(cluster.New(1, 50))
	require.NoError(t, err)
	_, err = merge.Merge(ctx, f.base, shared, f.scorer)
	assert.ErrorIs(t, err, merge.ErrSharedIDs)
	assert.Equal(t, 1, shared.Len())
}

func TestMerge_FailedMergeKeepsIncomingCluster(t *testing.T) {
	f := newFixture(t)
	// The scorer sneaks id 10, held by i0, into b1 so the first proposed
	// merge (b0 <- i0) collides with base.
	var once bool
	scorer := merge.ScorerFunc(func(a, b *cluster.Cluster) float64 {
		if !once {
			once = true
			require.NoError(t, f.b1.Add(10))
		}
		return f.scorer.Score(a, b)
	})

	rep, err := merge.Merge(context.Background(), f.base, f.incoming, scorer)
	require.ErrorIs(t, err, cluster.ErrOverlap)
	assert.Equal(t, 0, rep.Merged)

	assert.True(t, f.incoming.Has(f.i0))
	assert.Equal(t, 3, f.incoming.Len())
	assert.Equal(t, []uint32{10}, f.i0.Bibs())
	assert.Equal(t, []uint32{1}, f.b0.Bibs())
	assert.Equal(t, 2, f.base.Len())
}

func TestMerge_Logs(t *testing.T) {
	f := newFixture(t)
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	_, err := merge.Merge(context.Background(), f.base, f.incoming, f.scorer, merge.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"decision":"merged"`)
	assert.Contains(t, out, `"message":"merge round done"`)
	assert.Contains(t, out, `"strategy":"greedy"`)
}

func TestOptions_PanicOnInvalid(t *testing.T) {
	assert.Panics(t, func() { merge.WithThreshold(math.NaN()) })
	assert.Panics(t, func() { merge.WithThreshold(math.Inf(1)) })
	assert.Panics(t, func() { merge.WithStrategy(assign.Strategy(42)) })
	assert.Panics(t, func() { merge.WithWorkers(0) })
	assert.NotPanics(t, func() { merge.WithThreshold(-1) })
}

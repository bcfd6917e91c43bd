package merge

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/authorid/cluster"
)

// Block is one independent unit of work for MergeBlocks, typically all
// clusters sharing a normalised surname.
type Block struct {
	Name     string
	Base     *cluster.Set
	Incoming *cluster.Set
	Scorer   Scorer
}

// MergeBlocks runs Merge on every block, at most Workers at a time.
//
// Blocks are merged concurrently, so they must be fully independent: no set
// may appear twice, and every enemy of a block's cluster must itself belong
// to that block's Base or Incoming. Both conditions are checked before any
// block starts.
//
// Reports are returned in block order with Report.Block set to the block
// name. The first failing block cancels the context seen by the others and
// its error is returned with no reports.
//
// Errors:
//   - ErrSharedSet when a set appears in more than one block (or twice in one).
//   - ErrCrossBlockHate when a hate edge leaves a block.
//   - Any error returned by Merge, prefixed with the block name.
func MergeBlocks(ctx context.Context, blocks []Block, opts ...Option) ([]Report, error) {
	o := gatherOptions(opts...)

	seen := make(map[*cluster.Set]int, 2*len(blocks))
	for i, b := range blocks {
		for _, s := range []*cluster.Set{b.Base, b.Incoming} {
			if s == nil {
				continue
			}
			if j, ok := seen[s]; ok {
				return nil, fmt.Errorf("MergeBlocks: blocks %d and %d (%q): %w", j, i, b.Name, ErrSharedSet)
			}
			seen[s] = i
		}
	}
	for i, b := range blocks {
		if err := checkClosed(b); err != nil {
			return nil, fmt.Errorf("MergeBlocks: block %d (%q): %w", i, b.Name, err)
		}
	}

	reports := make([]Report, len(blocks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, b := range blocks {
		i, b := i, b // the closure must not depend on per-iteration loop variables
		g.Go(func() error {
			bo := o
			bo.logger = blockLogger(o.logger, b.Name)
			rep, err := mergeWith(gctx, b.Base, b.Incoming, b.Scorer, bo)
			if err != nil {
				return fmt.Errorf("block %q: %w", b.Name, err)
			}
			rep.Block = b.Name
			reports[i] = rep

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("MergeBlocks: %w", err)
	}

	return reports, nil
}

// checkClosed verifies that every enemy of a cluster in b is a member of
// b.Base or b.Incoming.
func checkClosed(b Block) error {
	inBlock := func(c *cluster.Cluster) bool {
		return (b.Base != nil && b.Base.Has(c)) || (b.Incoming != nil && b.Incoming.Has(c))
	}

	var err error
	for _, s := range []*cluster.Set{b.Base, b.Incoming} {
		if s == nil {
			continue
		}
		for _, c := range s.Clusters() {
			c.EachEnemy(func(enemy *cluster.Cluster) bool {
				if inBlock(enemy) {
					return true
				}
				err = fmt.Errorf("%v hates %v: %w", c, enemy, ErrCrossBlockHate)

				return false
			})
			if err != nil {
				return err
			}
		}
	}

	return nil
}

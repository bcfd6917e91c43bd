package cluster

import (
	"fmt"

	"github.com/RoaringBitmap/roaring"
)

// Cluster is one candidate authorial identity.
//
// bibs holds the member signature ids; hate holds the clusters this one is
// irreconcilable with; owner is the Set the cluster currently belongs to.
type Cluster struct {
	bibs  *roaring.Bitmap
	hate  map[*Cluster]struct{}
	owner *Set
}

// New creates a free cluster holding the given signature ids.
// Duplicate ids are collapsed.
func New(bibs ...uint32) *Cluster {
	return &Cluster{bibs: roaring.BitmapOf(bibs...)}
}

// Bibs returns the member ids in ascending order. The slice is a copy.
func (c *Cluster) Bibs() []uint32 { return c.bibs.ToArray() }

// Len returns the number of member ids.
func (c *Cluster) Len() int { return int(c.bibs.GetCardinality()) }

// Contains reports whether id is a member.
func (c *Cluster) Contains(id uint32) bool { return c.bibs.Contains(id) }

// Add inserts a signature id.
//
// When the cluster belongs to a Set the set's union is updated in the same
// call. An id already held by another member of that set yields ErrOverlap
// and leaves both unchanged. Adding an id the cluster already holds is a no-op.
func (c *Cluster) Add(id uint32) error {
	if c.bibs.Contains(id) {
		return nil
	}
	if c.owner != nil {
		if c.owner.all.Contains(id) {
			return fmt.Errorf("Cluster.Add(%d): %w", id, ErrOverlap)
		}
		c.owner.all.Add(id)
	}
	c.bibs.Add(id)

	return nil
}

// Hates reports whether other is registered as a mutual antagonist.
// A cluster never hates itself; nil is never hated.
func (c *Cluster) Hates(other *Cluster) bool {
	if other == nil {
		return false
	}
	_, ok := c.hate[other]

	return ok
}

// Quarrel registers c and other as mutually hating.
//
// Both edges are written in the same call, so the relation stays symmetric.
// Quarrelling twice is a no-op.
//
// Errors:
//   - ErrNilCluster when other is nil.
//   - ErrSelfQuarrel when other is c.
func (c *Cluster) Quarrel(other *Cluster) error {
	if other == nil {
		return ErrNilCluster
	}
	if other == c {
		return ErrSelfQuarrel
	}
	c.addHate(other)
	other.addHate(c)

	return nil
}

// Enemies returns the number of distinct clusters c hates.
func (c *Cluster) Enemies() int { return len(c.hate) }

// EachEnemy calls f for every cluster c hates, in no particular order,
// until f returns false. f must not change the hate relation.
func (c *Cluster) EachEnemy(f func(enemy *Cluster) bool) {
	for enemy := range c.hate {
		if !f(enemy) {
			return
		}
	}
}

// addHate writes one direction of the relation; callers write both.
func (c *Cluster) addHate(other *Cluster) {
	if c.hate == nil {
		c.hate = make(map[*Cluster]struct{})
	}
	c.hate[other] = struct{}{}
}

// absorb moves src's ids and enemies into c.
//
// Every enemy of src is rewired to hate c instead, keeping the relation
// symmetric. src ends empty, with no enemies and no owner.
// Precondition (checked by Set.Merge): c != src and !c.Hates(src).
func (c *Cluster) absorb(src *Cluster) {
	c.bibs.Or(src.bibs)
	for enemy := range src.hate {
		delete(enemy.hate, src)
		if enemy == c {
			continue
		}
		enemy.addHate(c)
		c.addHate(enemy)
	}
	src.hate = nil
	src.bibs.Clear()
	src.owner = nil
}

// String renders the cluster as its sorted ids, for diagnostics.
func (c *Cluster) String() string {
	return fmt.Sprintf("Cluster%v", c.Bibs())
}

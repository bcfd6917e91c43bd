package cluster

import (
	"errors"
	"fmt"

	"github.com/RoaringBitmap/roaring"
)

// Set is an ordered collection of disjoint clusters.
//
// all caches the union of every member's ids and is updated by each mutating
// call (Add, Remove, Merge, and Cluster.Add on a member).
type Set struct {
	clusters []*Cluster
	all      *roaring.Bitmap
}

// NewSet builds a set from the given clusters, keeping their order.
//
// Errors (the set is not built and no cluster is claimed):
//   - ErrNilCluster when an argument is nil.
//   - ErrForeignCluster when a cluster already belongs to a set, or is listed twice.
//   - ErrOverlap when two clusters share an id.
func NewSet(clusters ...*Cluster) (*Set, error) {
	s := &Set{
		clusters: make([]*Cluster, 0, len(clusters)),
		all:      roaring.New(),
	}
	for i, c := range clusters {
		if err := s.Add(c); err != nil {
			s.release()
			if errors.Is(err, ErrAlreadyMember) {
				err = ErrForeignCluster
			}

			return nil, fmt.Errorf("NewSet: cluster %d: %w", i, err)
		}
	}

	return s, nil
}

// release detaches every member; used to roll back a failed NewSet.
func (s *Set) release() {
	for _, c := range s.clusters {
		c.owner = nil
	}
	s.clusters = nil
	s.all.Clear()
}

// Add appends a free cluster to the set.
//
// Errors:
//   - ErrNilCluster, ErrAlreadyMember, ErrForeignCluster.
//   - ErrOverlap when c shares an id with a member.
func (s *Set) Add(c *Cluster) error {
	if c == nil {
		return ErrNilCluster
	}
	if c.owner == s {
		return ErrAlreadyMember
	}
	if c.owner != nil {
		return ErrForeignCluster
	}
	if s.all.Intersects(c.bibs) {
		return ErrOverlap
	}
	s.clusters = append(s.clusters, c)
	s.all.Or(c.bibs)
	c.owner = s

	return nil
}

// Remove detaches c from the set, keeping the order of the other members.
// c keeps its ids and its hate relation.
func (s *Set) Remove(c *Cluster) error {
	if c == nil {
		return ErrNilCluster
	}
	if c.owner != s {
		return ErrNotMember
	}
	s.drop(c)
	s.all.AndNot(c.bibs)
	c.owner = nil

	return nil
}

// drop removes c from the member slice only.
func (s *Set) drop(c *Cluster) {
	for i, m := range s.clusters {
		if m == c {
			s.clusters = append(s.clusters[:i], s.clusters[i+1:]...)

			return
		}
	}
}

// Merge makes dst absorb src.
//
// dst must be a member; src may be a member or a free cluster. On success dst
// holds the ids and the enemies of both, every former enemy of src hates dst,
// and src is left empty and detached. On error nothing changes.
//
// Errors:
//   - ErrNilCluster, ErrNotMember (dst), ErrSelfMerge, ErrForeignCluster (src).
//   - ErrHostile when dst and src hate each other.
//   - ErrOverlap when a free src shares ids with a member.
func (s *Set) Merge(dst, src *Cluster) error {
	if dst == nil || src == nil {
		return ErrNilCluster
	}
	if dst.owner != s {
		return fmt.Errorf("Merge: destination: %w", ErrNotMember)
	}
	if dst == src {
		return ErrSelfMerge
	}
	if src.owner != nil && src.owner != s {
		return fmt.Errorf("Merge: source: %w", ErrForeignCluster)
	}
	if dst.Hates(src) {
		return ErrHostile
	}

	if src.owner == s {
		s.drop(src)
	} else {
		if s.all.Intersects(src.bibs) {
			return fmt.Errorf("Merge: source: %w", ErrOverlap)
		}
		s.all.Or(src.bibs)
	}
	dst.absorb(src)

	return nil
}

// Clusters returns the members in insertion order. The slice is a copy.
func (s *Set) Clusters() []*Cluster {
	out := make([]*Cluster, len(s.clusters))
	copy(out, s.clusters)

	return out
}

// Len returns the number of member clusters.
func (s *Set) Len() int { return len(s.clusters) }

// Has reports whether c is a member.
func (s *Set) Has(c *Cluster) bool { return c != nil && c.owner == s }

// ClusterOf returns the member holding id, or nil.
// Complexity: O(k) over the k members when id is present, O(1) otherwise.
func (s *Set) ClusterOf(id uint32) *Cluster {
	if !s.all.Contains(id) {
		return nil
	}
	for _, c := range s.clusters {
		if c.bibs.Contains(id) {
			return c
		}
	}

	return nil
}

// AllBibs returns the union of every member's ids in ascending order.
func (s *Set) AllBibs() []uint32 { return s.all.ToArray() }

// NumAllBibs returns the number of distinct ids across all members.
func (s *Set) NumAllBibs() int { return int(s.all.GetCardinality()) }

// Intersects reports whether s and o hold a common signature id.
func (s *Set) Intersects(o *Set) bool { return s.all.Intersects(o.all) }

// UpdateBibs recomputes the union from the members.
//
// The cache is already kept current by every mutation, so this is a
// consistency check: it returns ErrOverlap (and keeps the old cache) if two
// members share an id.
func (s *Set) UpdateBibs() error {
	fresh := roaring.New()
	for i, c := range s.clusters {
		if fresh.Intersects(c.bibs) {
			return fmt.Errorf("UpdateBibs: cluster %d: %w", i, ErrOverlap)
		}
		fresh.Or(c.bibs)
	}
	s.all = fresh

	return nil
}

package cluster

import (
	"fmt"
	"sort"
)

// Link is a strong positive pairing between two signatures: both are
// believed to belong to the same author.
type Link struct {
	A, B uint32
}

// Group partitions signatures into the initial clusters of a Set.
//
// Every connected component of the graph (ids, links) becomes one cluster.
// It uses a disjoint-set (union-find) with path compression and union by rank.
//
// Steps:
//  1. Sort and de-duplicate ids; index them 0..n-1.
//  2. Union the endpoints of every link; a link naming an unknown id fails
//     with ErrUnknownSignature.
//  3. Walk ids in ascending order collecting members per root, so clusters
//     come out ordered by their smallest id and the result is deterministic.
//
// Complexity: O(n log n + α(n)·L). Memory: O(n).
func Group(ids []uint32, links []Link) (*Set, error) {
	// 1. Sorted, de-duplicated ids.
	sorted := append([]uint32(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	uniq := sorted[:0]
	for _, id := range sorted {
		if len(uniq) == 0 || id != uniq[len(uniq)-1] {
			uniq = append(uniq, id)
		}
	}
	index := make(map[uint32]int, len(uniq))
	for i, id := range uniq {
		index[id] = i
	}

	parent := make([]int, len(uniq))
	rank := make([]int, len(uniq))
	for i := range parent {
		parent[i] = i
	}

	// Iterative find with path compression (halving).
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// Union by rank: attach the shallower tree under the deeper root.
	union := func(u, v int) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	// 2. Apply links.
	for _, l := range links {
		a, ok := index[l.A]
		if !ok {
			return nil, fmt.Errorf("Group: link %d-%d: id %d: %w", l.A, l.B, l.A, ErrUnknownSignature)
		}
		b, ok := index[l.B]
		if !ok {
			return nil, fmt.Errorf("Group: link %d-%d: id %d: %w", l.A, l.B, l.B, ErrUnknownSignature)
		}
		union(a, b)
	}

	// 3. Collect components in ascending-id order.
	members := make(map[int][]uint32)
	var roots []int
	for i, id := range uniq {
		r := find(i)
		if _, seen := members[r]; !seen {
			roots = append(roots, r)
		}
		members[r] = append(members[r], id)
	}

	clusters := make([]*Cluster, len(roots))
	for i, r := range roots {
		clusters[i] = New(members[r]...)
	}

	return NewSet(clusters...)
}

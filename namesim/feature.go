package namesim

import "github.com/katalvlaran/authorid/cluster"

// Lookup resolves a signature id to its raw author-name string.
// The boolean is false for unknown ids.
type Lookup func(id uint32) (string, bool)

// MapLookup adapts a map to a Lookup.
func MapLookup(m map[uint32]string) Lookup {
	return func(id uint32) (string, bool) {
		s, ok := m[id]
		return s, ok
	}
}

// ClusterFeature returns a pairwise cluster feature: the mean Similarity over
// every (a-member, b-member) name pair. Ids unknown to lookup are skipped; if
// no known pair remains the feature is 0.
//
// Each member name is parsed once per call. The returned function is safe for
// concurrent use if lookup is.
func ClusterFeature(lookup Lookup) func(a, b *cluster.Cluster) float64 {
	return func(a, b *cluster.Cluster) float64 {
		if a == nil || b == nil {
			return 0
		}
		left := parseMembers(a, lookup)
		right := parseMembers(b, lookup)
		if len(left) == 0 || len(right) == 0 {
			return 0
		}

		var sum float64
		for _, l := range left {
			for _, r := range right {
				sum += l.Similarity(r)
			}
		}

		return sum / float64(len(left)*len(right))
	}
}

func parseMembers(c *cluster.Cluster, lookup Lookup) []Name {
	ids := c.Bibs()
	out := make([]Name, 0, len(ids))
	for _, id := range ids {
		if s, ok := lookup(id); ok {
			out = append(out, Parse(s))
		}
	}

	return out
}

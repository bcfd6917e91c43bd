package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/authorid/cluster"
)

func bibsOf(s *cluster.Set) [][]uint32 {
	var out [][]uint32
	for _, c := range s.Clusters() {
		out = append(out, c.Bibs())
	}

	return out
}

func TestGroup(t *testing.T) {
	tests := []struct {
		name  string
		ids   []uint32
		links []cluster.Link
		want  [][]uint32
	}{
		{
			name: "no links gives singletons",
			ids:  []uint32{3, 1, 2},
			want: [][]uint32{{1}, {2}, {3}},
		},
		{
			name:  "chain collapses",
			ids:   []uint32{1, 2, 3, 4},
			links: []cluster.Link{{A: 1, B: 2}, {A: 2, B: 3}},
			want:  [][]uint32{{1, 2, 3}, {4}},
		},
		{
			name:  "ordered by smallest id",
			ids:   []uint32{10, 20, 5, 30},
			links: []cluster.Link{{A: 30, B: 5}, {A: 10, B: 20}},
			want:  [][]uint32{{5, 30}, {10, 20}},
		},
		{
			name:  "duplicates and self links",
			ids:   []uint32{7, 7, 8},
			links: []cluster.Link{{A: 7, B: 7}},
			want:  [][]uint32{{7}, {8}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := cluster.Group(tc.ids, tc.links)
			require.NoError(t, err)
			assert.Equal(t, tc.want, bibsOf(s))
		})
	}
}

func TestGroup_Empty(t *testing.T) {
	s, err := cluster.Group(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.NumAllBibs())
}

func TestGroup_UnknownSignature(t *testing.T) {
	_, err := cluster.Group([]uint32{1, 2}, []cluster.Link{{A: 1, B: 3}})
	assert.ErrorIs(t, err, cluster.ErrUnknownSignature)
}

func TestGroup_DoesNotMutateInput(t *testing.T) {
	ids := []uint32{3, 1, 2}
	_, err := cluster.Group(ids, nil)
	require.NoError(t, err)
	assert.Equal(t, []uint32{3, 1, 2}, ids)
}

package namesim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/authorid/cluster"
	"github.com/katalvlaran/authorid/namesim"
)

const eps = 1e-12

func TestNormalize(t *testing.T) {
	assert.Equal(t, "godel", namesim.Normalize("  Gödel "))
	assert.Equal(t, "godel", namesim.Normalize("GÖDEL"))
	assert.Equal(t, "emile", namesim.Normalize("ÉMILE"))
	assert.Equal(t, "", namesim.Normalize(""))
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"jean", "paul", "sartre"}, namesim.Tokens("Jean-Paul Sartre"))
	assert.Equal(t, []string{"smith", "j"}, namesim.Tokens("Smith, J."))
	assert.Nil(t, namesim.Tokens(" -- , "))
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want namesim.Name
	}{
		{"Smith, John A.", namesim.Name{Surname: "smith", Given: []string{"john", "a"}}},
		{"John Smith", namesim.Name{Surname: "smith", Given: []string{"john"}}},
		{"van der Berg, Anna", namesim.Name{Surname: "van der berg", Given: []string{"anna"}}},
		{"Smith", namesim.Name{Surname: "smith", Given: []string{}}},
		{"", namesim.Name{}},
		{", ", namesim.Name{}},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got := namesim.Parse(tc.in)
			assert.Equal(t, tc.want.Surname, got.Surname)
			assert.ElementsMatch(t, tc.want.Given, got.Given)
		})
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"Smith, John", "John Smith", 1},
		{"Smith, J.", "Smith, John", 0.9},
		{"Gödel, Kurt", "GODEL, K", 0.9},
		{"Smith, John A", "Smith, John Adam", 0.95},
		{"Smith", "Smith, John", namesim.SurnameOnly},
		{"Smith, John", "Smith, Jane", 0},
		{"Smith, John", "Smith, Anna", 0},
		{"Smith, John", "Jones, John", 0},
		{"", "", 0},
	}
	for _, tc := range tests {
		t.Run(tc.a+"|"+tc.b, func(t *testing.T) {
			assert.InDelta(t, tc.want, namesim.Similarity(tc.a, tc.b), eps)
			assert.InDelta(t, tc.want, namesim.Similarity(tc.b, tc.a), eps, "symmetric")
		})
	}
}

func TestClusterFeature(t *testing.T) {
	f := namesim.ClusterFeature(namesim.MapLookup(map[uint32]string{
		1: "Smith, John",
		2: "Smith, J.",
		3: "Jones, Mary",
	}))

	assert.InDelta(t, 0.9, f(cluster.New(1), cluster.New(2)), eps)
	assert.InDelta(t, 0.0, f(cluster.New(1, 2), cluster.New(3)), eps)
	// Pairs: (1,2)=0.9, (1,3)=0.
	assert.InDelta(t, 0.45, f(cluster.New(1), cluster.New(2, 3)), eps)
	// Unknown ids are skipped.
	assert.InDelta(t, 0.9, f(cluster.New(1, 99), cluster.New(2)), eps)
	assert.Zero(t, f(cluster.New(99), cluster.New(1)))
	assert.Zero(t, f(nil, cluster.New(1)))
}

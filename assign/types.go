package assign

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/authorid/matrix"
)

// ErrUnknownStrategy is returned for a Strategy value or name outside the
// defined set.
var ErrUnknownStrategy = errors.New("assign: unknown strategy")

// Triple is one accepted pairing: row Row is matched to column Col with score Value.
type Triple struct {
	Row   int
	Col   int
	Value float64
}

// Strategy selects the assignment algorithm.
type Strategy int

const (
	// GreedyAssignment picks highest cells first; approximate, deterministic tie-breaking.
	GreedyAssignment Strategy = iota

	// OptimalAssignment finds the maximum-total matching (Hungarian algorithm).
	OptimalAssignment
)

// String returns the lower-case strategy name.
func (s Strategy) String() string {
	switch s {
	case GreedyAssignment:
		return "greedy"
	case OptimalAssignment:
		return "optimal"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a name (case-insensitive) to a Strategy.
// "hungarian" is accepted as an alias of "optimal".
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "greedy":
		return GreedyAssignment, nil
	case "optimal", "hungarian":
		return OptimalAssignment, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownStrategy)
	}
}

// Map runs the selected strategy on m.
func Map(m matrix.Matrix, s Strategy) ([]Triple, error) {
	switch s {
	case GreedyAssignment:
		return Greedy(m)
	case OptimalAssignment:
		return Hungarian(m)
	default:
		return nil, fmt.Errorf("Map: %w", ErrUnknownStrategy)
	}
}

// Total sums the values of ts.
func Total(ts []Triple) float64 {
	var sum float64
	for _, t := range ts {
		sum += t.Value
	}

	return sum
}

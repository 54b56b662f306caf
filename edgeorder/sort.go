package edgeorder

import (
	"cmp"

	"golang.org/x/exp/slices"

	"github.com/maxdavidson/junction/distance"
)

type ascending struct{}

// Ascending returns a Strategy that sorts all edges by non-decreasing weight.
func Ascending() Strategy {
	return ascending{}
}

func (ascending) Name() string { return "ascending" }

func (ascending) Order(edges []distance.Edge) ([]distance.Edge, error) {
	Sort(edges)

	return edges, nil
}

// Sort orders edges by non-decreasing weight. Equal weights keep their input
// order, so row-major Pairwise output breaks ties by (A, B).
func Sort(edges []distance.Edge) {
	slices.SortStableFunc(edges, func(a, b distance.Edge) int {
		return cmp.Compare(a.Weight, b.Weight)
	})
}

package edgeorder

import (
	"fmt"

	"github.com/maxdavidson/junction/distance"
)

type smallest struct {
	k int
}

// Smallest returns a Strategy that keeps only the k lightest edges.
func Smallest(k int) Strategy {
	return smallest{k: k}
}

func (s smallest) Name() string { return fmt.Sprintf("smallest(%d)", s.k) }

func (s smallest) Order(edges []distance.Edge) ([]distance.Edge, error) {
	if err := Select(edges, s.k); err != nil {
		return nil, err
	}

	return edges[:s.k], nil
}

// Select partitions edges so that edges[:k] holds k edges of smallest weight.
// Neither side of the boundary is sorted.
//
// Invariant kept by the loop: every weight in edges[:lo] is ≤ every weight in
// edges[lo:hi], which is ≤ every weight in edges[hi:], and lo ≤ k ≤ hi.
//
// Complexity: O(len(edges)) expected.
func Select(edges []distance.Edge, k int) error {
	if k < 0 {
		return ErrNegativeK
	}
	if k > len(edges) {
		return fmt.Errorf("k=%d, edges=%d: %w", k, len(edges), ErrKTooLarge)
	}

	lo, hi := 0, len(edges)
	for hi-lo > 1 {
		pivot := medianOfThree(edges, lo, lo+(hi-lo)/2, hi-1)

		// Three-way partition of [lo, hi):
		// [lo, lt) < pivot, [lt, gt) == pivot, [gt, hi) > pivot.
		lt, i, gt := lo, lo, hi
		for i < gt {
			switch w := edges[i].Weight; {
			case w < pivot:
				edges[lt], edges[i] = edges[i], edges[lt]
				lt++
				i++
			case w > pivot:
				gt--
				edges[i], edges[gt] = edges[gt], edges[i]
			default:
				i++
			}
		}

		switch {
		case k < lt:
			hi = lt
		case k > gt:
			lo = gt
		default:
			// The boundary falls inside the run of pivot-equal weights.
			return nil
		}
	}

	return nil
}

// medianOfThree returns the median weight among edges a, b and c.
func medianOfThree(edges []distance.Edge, a, b, c int) uint64 {
	x, y, z := edges[a].Weight, edges[b].Weight, edges[c].Weight
	if x > y {
		x, y = y, x
	}
	if y > z {
		y = z
	}
	if x > y {
		y = x
	}

	return y
}

// Package distance derives the complete weighted edge set of a point.Set:
// one Edge per unordered pair of distinct points, weighted by the exact
// squared Euclidean distance.
//
// Square roots are never taken. Ordering by squared distance is the same as
// ordering by distance, and integer weights keep ties exact.
//
// Complexity: Pairwise is O(n²) time and memory, n = number of points.
package distance

import (
	"fmt"

	"github.com/maxdavidson/junction/point"
)

// Edge connects points A and B (A < B) with the squared distance between them.
type Edge struct {
	A, B   int
	Weight uint64
}

// String renders e as "A-B(weight)".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d(%d)", e.A, e.B, e.Weight)
}

// Squared returns the sum of squared per-axis absolute differences of a and b.
// The result is exact for coordinates up to point.MaxCoordinate.
func Squared(a, b point.Point) uint64 {
	dx := absDiff(a.X, b.X)
	dy := absDiff(a.Y, b.Y)
	dz := absDiff(a.Z, b.Z)

	return dx*dx + dy*dy + dz*dz
}

func absDiff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}

	return b - a
}

// Count returns n·(n−1)/2, the number of unordered pairs among n points.
// Returns 0 for n < 2.
func Count(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}

// Pairwise returns every edge {i, j}, i < j, of s in row-major order:
// i ascending, then j ascending. Returns an empty slice when s has fewer
// than two points.
func Pairwise(s point.Set) []Edge {
	n := s.Len()
	edges := make([]Edge, 0, Count(n))
	for i := 0; i < n; i++ {
		pi := s.At(i)
		for j := i + 1; j < n; j++ {
			edges = append(edges, Edge{A: i, B: j, Weight: Squared(pi, s.At(j))})
		}
	}

	return edges
}

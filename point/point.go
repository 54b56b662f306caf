package point

import "fmt"

// MaxCoordinate is the largest accepted coordinate value.
const MaxCoordinate = 1<<31 - 1

// Point is a location in 3-D unsigned integer space.
type Point struct {
	X, Y, Z uint64
}

// String formats p the same way the parser reads it.
func (p Point) String() string {
	return fmt.Sprintf("%d,%d,%d", p.X, p.Y, p.Z)
}

// Axes returns the coordinates of p as an array, X first.
func (p Point) Axes() [3]uint64 {
	return [3]uint64{p.X, p.Y, p.Z}
}

// Set is an immutable ordered sequence of points.
// The zero value is an empty set.
type Set struct {
	points []Point
}

// NewSet copies pts into a new Set after checking every coordinate
// against MaxCoordinate.
//
// Returns ErrCoordinateRange (wrapped with the offending index) on failure.
// Complexity: O(n).
func NewSet(pts []Point) (Set, error) {
	for i, p := range pts {
		for _, c := range p.Axes() {
			if c > MaxCoordinate {
				return Set{}, fmt.Errorf("point %d (%s): %w", i, p, ErrCoordinateRange)
			}
		}
	}
	cp := make([]Point, len(pts))
	copy(cp, pts)

	return Set{points: cp}, nil
}

// MustNewSet is like NewSet but panics on error. Intended for tests and fixtures.
func MustNewSet(pts []Point) Set {
	s, err := NewSet(pts)
	if err != nil {
		panic(err)
	}

	return s
}

// Len returns the number of points.
func (s Set) Len() int { return len(s.points) }

// At returns the point with identifier i. Panics if i is out of range.
func (s Set) At(i int) Point { return s.points[i] }

// Points returns a copy of the underlying points.
func (s Set) Points() []Point {
	cp := make([]Point, len(s.points))
	copy(cp, s.points)

	return cp
}

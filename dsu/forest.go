package dsu

import (
	"golang.org/x/exp/slices"
)

// Forest is a partition of the point identifiers 0..n-1 into groups.
// It is not safe for concurrent use.
type Forest struct {
	owner   []int   // point → group
	members [][]int // group → points; empty once merged away
	count   int     // non-empty groups
}

// New returns a Forest of n singleton groups.
func New(n int) *Forest {
	f := &Forest{
		owner:   make([]int, n),
		members: make([][]int, n),
		count:   n,
	}
	for p := 0; p < n; p++ {
		f.owner[p] = p
		f.members[p] = []int{p}
	}

	return f
}

// Len returns the number of points in the forest.
func (f *Forest) Len() int { return len(f.owner) }

// Count returns the number of non-empty groups.
func (f *Forest) Count() int { return f.count }

// Find returns the group that owns point p. Panics if p is out of range.
func (f *Forest) Find(p int) int { return f.owner[p] }

// Size returns the number of points in group g, or 0 if g was merged away.
func (f *Forest) Size(g int) int { return len(f.members[g]) }

// Members returns a copy of the points in group g.
func (f *Forest) Members(g int) []int { return slices.Clone(f.members[g]) }

// Union merges groups a and b and returns the surviving group identifier.
// The smaller group is absorbed into the larger; on equal sizes b is
// absorbed into a. When a == b nothing changes and Union returns (a, false).
func (f *Forest) Union(a, b int) (int, bool) {
	if a == b {
		return a, false
	}
	if len(f.members[a]) < len(f.members[b]) {
		a, b = b, a
	}
	for _, p := range f.members[b] {
		f.owner[p] = a
	}
	f.members[a] = append(f.members[a], f.members[b]...)
	f.members[b] = nil
	f.count--

	return a, true
}

// UnionPoints merges the groups owning points p and q.
// Reports whether a merge happened.
func (f *Forest) UnionPoints(p, q int) bool {
	_, merged := f.Union(f.owner[p], f.owner[q])

	return merged
}

// Connected reports whether points p and q share a group.
func (f *Forest) Connected(p, q int) bool {
	return f.owner[p] == f.owner[q]
}

// Groups returns every non-empty group as a sorted slice of points.
// Larger groups come first; equal sizes are ordered by their smallest point.
func (f *Forest) Groups() [][]int {
	out := make([][]int, 0, f.count)
	for _, m := range f.members {
		if len(m) == 0 {
			continue
		}
		g := slices.Clone(m)
		slices.Sort(g)
		out = append(out, g)
	}
	slices.SortFunc(out, func(x, y []int) int {
		if len(x) != len(y) {
			return len(y) - len(x)
		}
		return x[0] - y[0]
	})

	return out
}

// Sizes returns the size of every non-empty group, largest first.
func (f *Forest) Sizes() []int {
	out := make([]int, 0, f.count)
	for _, m := range f.members {
		if len(m) > 0 {
			out = append(out, len(m))
		}
	}
	slices.SortFunc(out, func(x, y int) int { return y - x })

	return out
}

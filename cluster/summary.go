package cluster

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/maxdavidson/junction/dsu"
)

// Summary describes the component sizes of a forest.
type Summary struct {
	Components int     // non-empty groups
	Sizes      []int   // group sizes, largest first
	Largest    int     // Sizes[0], or 0 for an empty forest
	Mean       float64 // mean group size
	StdDev     float64 // sample standard deviation; 0 with fewer than two groups
}

// Summarize computes a Summary of f.
func Summarize(f *dsu.Forest) Summary {
	sizes := f.Sizes()
	s := Summary{Components: len(sizes), Sizes: sizes}
	if len(sizes) == 0 {
		return s
	}
	s.Largest = sizes[0]

	xs := make([]float64, len(sizes))
	for i, v := range sizes {
		xs[i] = float64(v)
	}
	if len(xs) == 1 {
		s.Mean = xs[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(xs, nil)

	return s
}

// String renders a one-line human readable summary.
func (s Summary) String() string {
	return fmt.Sprintf("components=%d largest=%d mean=%.3f stddev=%.3f",
		s.Components, s.Largest, s.Mean, s.StdDev)
}

package cluster

import (
	"fmt"

	"github.com/maxdavidson/junction/dsu"
	"github.com/maxdavidson/junction/point"
)

// TopThree multiplies the sizes of the three largest components once every
// ordered edge has been consumed. It never stops a run early.
type TopThree struct{}

// Name implements Aggregator.
func (TopThree) Name() string { return "top-three" }

// Validate implements Aggregator. Any point count is accepted; too few
// components surface from Value.
func (TopThree) Validate(point.Set) error { return nil }

// Done implements Aggregator.
func (TopThree) Done(*dsu.Forest) bool { return false }

// Value implements Aggregator.
func (TopThree) Value(_ point.Set, r Result) (uint64, error) {
	sizes := r.Forest.Sizes()
	if len(sizes) < 3 {
		return 0, fmt.Errorf("%d components: %w", len(sizes), ErrTooFewComponents)
	}

	return uint64(sizes[0]) * uint64(sizes[1]) * uint64(sizes[2]), nil
}

// Bottleneck stops a run on the first edge after which a single component
// remains and reports the product of that edge's X coordinates.
type Bottleneck struct{}

// Name implements Aggregator.
func (Bottleneck) Name() string { return "bottleneck" }

// Validate implements Aggregator.
func (Bottleneck) Validate(pts point.Set) error {
	if pts.Len() < 2 {
		return fmt.Errorf("%d points: %w", pts.Len(), ErrTooFewPoints)
	}

	return nil
}

// Done implements Aggregator.
func (Bottleneck) Done(f *dsu.Forest) bool { return f.Count() == 1 }

// Value implements Aggregator.
func (Bottleneck) Value(pts point.Set, r Result) (uint64, error) {
	if !r.Stopped {
		return 0, fmt.Errorf("%d components left: %w", r.Forest.Count(), ErrNotConnected)
	}

	return pts.At(r.Last.A).X * pts.At(r.Last.B).X, nil
}

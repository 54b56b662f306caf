package cluster

import (
	"fmt"

	"github.com/maxdavidson/junction/edgeorder"
	"github.com/maxdavidson/junction/point"
)

// TopThreeProduct connects the k closest pairs of points and returns the
// product of the sizes of the three largest resulting components.
//
// Error Conditions:
//   - point.ErrCoordinateRange : a coordinate exceeds point.MaxCoordinate.
//   - edgeorder.ErrNegativeK   : k < 0.
//   - edgeorder.ErrKTooLarge   : k > n·(n−1)/2.
//   - ErrTooFewComponents      : fewer than three components remain.
func TopThreeProduct(points []point.Point, k int, opts ...Option) (uint64, error) {
	o := NewOptions(opts...)
	o.Mode, o.Pairs = ModeTopThree, k

	return Compute(points, o)
}

// BottleneckProduct connects pairs in ascending distance order until all
// points form one component and returns the product of the X coordinates of
// the pair that completed it.
//
// Error Conditions:
//   - point.ErrCoordinateRange : a coordinate exceeds point.MaxCoordinate.
//   - ErrTooFewPoints          : fewer than two points.
func BottleneckProduct(points []point.Point, opts ...Option) (uint64, error) {
	o := NewOptions(opts...)
	o.Mode = ModeBottleneck

	return Compute(points, o)
}

// Compute selects and runs the mode named by opts.Mode.
//
//	– ModeTopThree:   Smallest(opts.Pairs) + TopThree.
//	– ModeBottleneck: Ascending + Bottleneck.
//	– Otherwise:      ErrUnknownMode.
func Compute(points []point.Point, opts Options) (uint64, error) {
	res, err := Run(points, opts)
	if err != nil {
		return 0, err
	}

	return res.Value, nil
}

// Run is like Compute but returns the full Result, including the final forest.
func Run(points []point.Point, opts Options) (Result, error) {
	p, err := NewPipeline(opts)
	if err != nil {
		return Result{}, err
	}
	pts, err := point.NewSet(points)
	if err != nil {
		return Result{}, fmt.Errorf("cluster: %w", err)
	}

	return p.Run(pts)
}

// NewPipeline builds the Pipeline for opts.Mode.
func NewPipeline(opts Options) (Pipeline, error) {
	p := Pipeline{Logf: opts.Logf}
	switch opts.Mode {
	case ModeTopThree:
		p.Order, p.Aggregate = edgeorder.Smallest(opts.Pairs), TopThree{}
	case ModeBottleneck:
		p.Order, p.Aggregate = edgeorder.Ascending(), Bottleneck{}
	default:
		return Pipeline{}, fmt.Errorf("%q: %w", opts.Mode, ErrUnknownMode)
	}

	return p, nil
}

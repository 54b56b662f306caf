package edgeorder

import (
	"errors"

	"github.com/maxdavidson/junction/distance"
)

var (
	// ErrNegativeK indicates a negative selection size.
	ErrNegativeK = errors.New("edgeorder: k must be non-negative")
	// ErrKTooLarge indicates a selection size larger than the edge count.
	ErrKTooLarge = errors.New("edgeorder: k exceeds number of edges")
)

// Strategy reorders an edge slice in place and returns the prefix that a
// consumer should process, in processing order.
type Strategy interface {
	// Order rearranges edges and returns the slice to consume.
	Order(edges []distance.Edge) ([]distance.Edge, error)

	// Name identifies the strategy in diagnostics.
	Name() string
}

package cluster

import (
	"fmt"

	"github.com/maxdavidson/junction/distance"
	"github.com/maxdavidson/junction/dsu"
	"github.com/maxdavidson/junction/edgeorder"
	"github.com/maxdavidson/junction/point"
)

// Aggregator decides when a run stops and turns the final forest into a value.
// The two implementations are TopThree and Bottleneck.
type Aggregator interface {
	// Name identifies the aggregator in diagnostics.
	Name() string

	// Validate rejects inputs the aggregator cannot produce a value for.
	Validate(pts point.Set) error

	// Done is called after every consumed edge; returning true stops the run.
	Done(f *dsu.Forest) bool

	// Value computes the run's result from the finished forest.
	Value(pts point.Set, r Result) (uint64, error)
}

// Result describes a finished pipeline run.
type Result struct {
	// Value is the aggregator's output. Zero until Value succeeds.
	Value uint64
	// Edges is the number of edges the order strategy handed out.
	Edges int
	// Consumed is the number of edges fed to the forest before stopping.
	Consumed int
	// Merges is the number of consumed edges that joined two components.
	Merges int
	// Stopped reports whether the aggregator ended the run early.
	Stopped bool
	// Last is the edge being processed when the run stopped; valid if Stopped.
	Last distance.Edge
	// LastMerged reports whether Last itself performed a merge.
	LastMerged bool
	// Forest is the final partition.
	Forest *dsu.Forest
}

// Pipeline wires an edge order to an aggregator.
type Pipeline struct {
	Order     edgeorder.Strategy
	Aggregate Aggregator
	// Logf receives diagnostics; nil means the package Logf.
	Logf func(format string, args ...any)
}

func (p Pipeline) logf(format string, args ...any) {
	if p.Logf != nil {
		p.Logf(format, args...)
		return
	}
	Logf(format, args...)
}

// Merge runs the pipeline up to, but not including, aggregation: it derives
// and orders the edges, then feeds them to a fresh forest until the
// aggregator reports Done or the edges run out.
//
// Steps:
//  1. Validate the pipeline and let the aggregator validate pts.
//  2. distance.Pairwise(pts), then Order.Order on the result.
//  3. For each ordered edge: union its endpoints' groups, then ask Done.
//
// Complexity: O(n²) plus the order strategy's cost.
func (p Pipeline) Merge(pts point.Set) (Result, error) {
	// 1. Validate.
	if p.Order == nil || p.Aggregate == nil {
		return Result{}, ErrInvalidPipeline
	}
	if err := p.Aggregate.Validate(pts); err != nil {
		return Result{}, err
	}

	// 2. Derive and order edges.
	all := distance.Pairwise(pts)
	ordered, err := p.Order.Order(all)
	if err != nil {
		return Result{}, fmt.Errorf("cluster: %s: %w", p.Order.Name(), err)
	}
	p.logf("cluster: %s/%s: %d points, consuming up to %d of %d edges",
		p.Order.Name(), p.Aggregate.Name(), pts.Len(), len(ordered), len(all))

	// 3. Feed the forest.
	f := dsu.New(pts.Len())
	res := Result{Edges: len(ordered), Forest: f}
	for _, e := range ordered {
		merged := f.UnionPoints(e.A, e.B)
		res.Consumed++
		if merged {
			res.Merges++
		}
		if p.Aggregate.Done(f) {
			res.Stopped = true
			res.Last = e
			res.LastMerged = merged
			p.logf("cluster: stopped at edge %d/%d %v (merged=%t)", res.Consumed, len(ordered), e, merged)
			break
		}
	}
	p.logf("cluster: %d merges, %d components", res.Merges, f.Count())

	return res, nil
}

// Run executes Merge and then the aggregator's Value.
func (p Pipeline) Run(pts point.Set) (Result, error) {
	res, err := p.Merge(pts)
	if err != nil {
		return Result{}, err
	}
	v, err := p.Aggregate.Value(pts, res)
	if err != nil {
		return Result{}, err
	}
	res.Value = v

	return res, nil
}

// Package cluster is the clustering engine of junction: it connects points in
// 3-D space by their closest pairs and reports a single number about the
// resulting components.
//
// What & Why
//
//	Both modes run the same pipeline (see Pipeline):
//
//	    point.Set → distance.Pairwise → edgeorder.Strategy → dsu.Forest → Aggregator
//
//	and differ only in the edge order they ask for and in when and how they
//	turn the forest into a result.
//
// Modes
//
//   - TopThreeProduct(points, k)
//
//   - Order: edgeorder.Smallest(k), the k globally closest pairs, unordered.
//
//   - Aggregation: merge every selected pair, then multiply the sizes of the
//     three largest components (untouched singletons included).
//
//   - Precondition: at least three components remain (ErrTooFewComponents).
//
//   - BottleneckProduct(points)
//
//   - Order: edgeorder.Ascending(), every pair by increasing distance.
//
//   - Aggregation: early-terminated Kruskal. After each edge, stop as soon as
//     one component is left and return X(a)·X(b) of that edge. The stopping
//     edge is the maximum-weight edge of a minimum spanning tree.
//
//   - Precondition: at least two points (ErrTooFewPoints).
//
// Configuration
//
//	Options follow the functional-option style: DefaultOptions, WithMode,
//	WithPairs and WithLogger. Compute dispatches on Options.Mode, so callers
//	that pick the mode at runtime (the junction command) need no switch.
//
// Diagnostics
//
//	The pipeline reports strategy names, edge counts and the stopping edge
//	through a printf-style logger: Options.Logf when set, otherwise the
//	package-level Logf, which discards output until SetLogger replaces it.
//
// Error Conditions
//
//   - ErrTooFewPoints     : bottleneck mode with fewer than two points.
//   - ErrTooFewComponents : top-three mode left fewer than three components.
//   - ErrNotConnected     : the ordered edges ran out before one component was left.
//   - ErrInvalidPipeline  : a Pipeline is missing its order or aggregator.
//   - ErrUnknownMode      : Options.Mode names no mode.
//   - edgeorder.ErrNegativeK, edgeorder.ErrKTooLarge : invalid k.
//   - point.ErrCoordinateRange : a coordinate exceeds point.MaxCoordinate.
//
// Complexity: O(n²) time and memory for n points, dominated by edge derivation;
// BottleneckProduct adds O(n² log n) for the sort.
package cluster

// Package point defines the input model of the junction clustering engine:
// an immutable, ordered set of 3-D unsigned integer coordinates.
//
// What & Why
//
//   - A Point is identified by its index inside a Set. Every other package
//     (distance, edgeorder, dsu, cluster) refers to points only by that index.
//
//   - Coordinates are bounded by MaxCoordinate so that squared Euclidean
//     distances fit a uint64 exactly: each squared axis difference is below
//     2^62 and the sum of three stays below 2^64.
//
// Parsing
//
//	Parse and ParseReader read the line-oriented text form, one point per line:
//
//	    162,817,812
//	    57,618,57
//
//	Blank lines are skipped. Any other malformed line yields ErrMalformedLine
//	wrapped with its 1-based line number.
//
// Error Conditions
//
//   - ErrMalformedLine   : a line is not three comma-separated unsigned integers.
//   - ErrCoordinateRange : a coordinate exceeds MaxCoordinate.
package point

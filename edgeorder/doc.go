// Package edgeorder decides in which order, and how many of, the edges of a
// distance.Pairwise result are handed to the clustering forest.
//
// Strategies
//
//   - Smallest(k) — bounded-K selection.
//     Moves the k lightest edges to the front of the slice, in arbitrary order
//     among themselves, without ordering the rest.
//     Algorithm: iterative quickselect with a median-of-three pivot and a
//     three-way (Dutch national flag) partition, so runs of equal weights
//     collapse in a single pass.
//     Complexity: O(E) expected time, O(1) extra memory.
//
//   - Ascending() — full ordering.
//     Sorts every edge by non-decreasing weight (Kruskal processing order).
//     The sort is stable: equal weights keep their input order.
//     Complexity: O(E log E) time.
//
// Guarantees
//
//   - Smallest: no edge outside the returned prefix has strictly smaller weight
//     than an edge inside it. Ties at the k-th boundary are broken arbitrarily.
//   - Ascending: the result is a permutation of the input and non-decreasing.
//
// Both strategies reorder the slice they are given in place.
//
// Error Conditions
//
//   - ErrNegativeK : Smallest was configured with k < 0.
//   - ErrKTooLarge : k exceeds the number of edges available.
package edgeorder

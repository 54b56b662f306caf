// Package junction is an in-memory engine for single-linkage clustering of
// points in 3-D integer space: connect the closest pairs first, then read a
// number off the components that form.
//
// What is inside?
//
//	A small, deterministic, dependency-light pipeline built from:
//		• point     — immutable point sets and the "x,y,z" line parser
//		• distance  — every pairwise edge, weighted by exact squared distance
//		• edgeorder — bounded-K quickselect or full ascending sort of edges
//		• dsu       — a membership-table disjoint-set forest
//		• cluster   — the pipeline, its two aggregators and the entry points
//
// Two questions are answered:
//
//   - cluster.TopThreeProduct(points, k): connect the k closest pairs and
//     multiply the sizes of the three largest components.
//   - cluster.BottleneckProduct(points): connect pairs by increasing distance
//     until one component remains and multiply the X coordinates of the pair
//     that got there.
//
// Quick ASCII example (five points on the X axis, k = 2):
//
//	0─1        10──12                 40
//	└─┘        └────┘                  ·
//	 2           2                     1    → 2·2·1 = 4
//
// The command in cmd/junction runs either mode over a point file.
package junction

// Package dsu provides the disjoint-set forest that tracks which point
// belongs to which component while the clustering engine merges edges.
//
// Representation
//
//	Instead of parent pointers with path compression, the forest keeps a
//	direct membership table:
//
//	    owner[p]   — the group that currently owns point p
//	    members[g] — the points owned by group g
//
//	Find is a single table lookup. Union moves every point of the smaller
//	group into the larger one and rewrites their owner entries, so each point
//	moves at most log2(n) times over any sequence of unions.
//
// Group identifiers
//
//	New(n) creates groups 0..n-1, group i owning point i. A group that is
//	merged away keeps its identifier but its member set becomes empty and
//	Size reports 0; no point refers to it again.
//
// Complexity:
//   - Find, Size, Count: O(1)
//   - Union: O(size of the smaller group)
//   - Groups, Sizes: O(n log n)
package dsu

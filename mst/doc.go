// Package mst computes minimum spanning trees over dense, implicitly
// defined graphs with Prim's algorithm.
//
// The graph is given as a node count n and a weight function w(u, v); every
// pair is a candidate edge, and an edge weighted +Inf is treated as absent.
// This fits Euclidean partitions, where the graph is complete and building
// an explicit edge list would cost O(n²) memory for nothing.
//
// The frontier is an indexed binary min-heap holding at most one entry per
// node, keyed by the cheapest known edge into the tree. Relaxation uses
// decrease-key and only replaces an entry when the new edge is strictly
// cheaper, so among equal-weight candidates the first one found is kept.
//
// Complexity: O(n² log n) time, O(n) memory.
package mst

// Package topo computes a topological order of a seqgraph.Graph together
// with a back-edge classification.
//
// Order is built by a three-color (white/gray/black) DFS; any edge whose
// target is gray when encountered is classified as a back-edge. Reversing
// DFS post-order yields a linearization consistent with every non-back
// edge: for every (u->v) that is not a back-edge, Rank(u) < Rank(v).
//
// DFS start order is fixed: roots (nodes with no incoming edges) are
// visited in ascending NodeID order, then any remaining unvisited nodes
// (pure cycles with no root) in ascending NodeID order, making
// classification reproducible for a fixed graph.
package topo

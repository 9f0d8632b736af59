// Package complexity implements a fixed-point estimator that computes,
// for every node of a seqgraph.Graph, an upper bound on the number of
// distinct length-k contexts reaching it. Callers use the bounds to
// decide where trie construction should begin.
//
// The algorithm is a three-phase sweep over a topo.Order: a DAG pass that
// ignores back-edges, a seeding pass that gives every back-edge one
// bounded initial push, and a fixed-point pass driven by a min-heap keyed
// on topological rank that propagates growth until no node's bound
// changes. All counter arithmetic saturates at the sigma^k ceiling, and a
// per-back-edge traversal cap bounds how many times a loop may
// re-propagate growth, so the fixed point terminates even on graphs whose
// loops would otherwise amplify counts indefinitely.
package complexity

// Package triebuild implements the three trie-building strategies:
// BackTrack, PositionBFS, and NodeBFS. Each enumerates (kmer, position)
// pairs reachable by directed walks of length k from a caller-supplied
// set of starts, under a different cost profile, and each writes into a
// caller-provided pairsink.Sink.
//
// BackTrack is a recursive DFS that carries one "live" rolling k-mer:
// branch points push and pop a single symbol on it, and it is cloned only
// for a completion strictly inside a node and once per node it runs
// through (to restore it afterwards), never once per symbol. PositionBFS runs three ordered fast paths
// followed by a level-synchronous BFS over two alternating queues, with
// a Stats counter per fast path and an early-cut guard on the frontier
// size. NodeBFS drives a priority queue ordered by topological rank,
// rolls k-mers along whole segments, and bounds duplicate propagation
// with an adaptive linear/hashed per-node presence check that switches
// over at a configurable cutoff.
//
// NodeBFS and the complexity estimator share the same container/heap
// min-heap shape, keyed on topo.Order.Less; BackTrack and PositionBFS use
// no priority queue.
package triebuild

// Package seqgraph implements the read-only, node-labeled directed graph
// consumed by the rest of this module: a graph whose nodes carry strings
// over a finite alphabet and whose edges denote valid concatenations.
//
// Node and edge ids are dense integers ([0, NumNodes) and a dense range
// spanning both directions respectively); ReverseEdge is an involution
// over edge ids. The graph is assembled once via Builder and is
// immutable (safe for concurrent readers) after Build.
//
// This module does not parse any on-disk graph format; it only assembles
// the in-memory container the core algorithms walk.
package seqgraph

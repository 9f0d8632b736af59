// Package triegraph wires the lower-level packages (seqgraph, topo,
// components, complexity, lloc, pairsink, triebuild) into one pipeline:
// build a graph, order it, estimate complexity, pick starts, run a trie
// builder, collect the resulting (kmer, position) pairs.
package triegraph

// Package triegraph builds a (kmer, position) index over a node-labeled
// directed sequence graph: given a depth k, every distinct length-k
// string spellable along some directed walk is paired with every
// position it can be read from.
//
// The module is organized as a pipeline of small packages, leaves first:
//
//	alphabet/    — Symbol, Alphabet, the rolling Kmer window
//	seqgraph/    — the read-only Graph and its Builder
//	topo/        — topological order with back-edge classification
//	components/  — one seed node per weakly connected component
//	lloc/        — NodePos, LetterLoc, and a dense Compressor
//	complexity/  — the fixed-point estimator bounding k-mer contexts per node
//	pairsink/    — the (kmer, position) output collector
//	triebuild/   — the three builders: BackTrack, PositionBFS, NodeBFS
//	fixtures/    — synthetic graphs for tests
//	triegraph/   — the Data aggregate and the Build pipeline tying it together
//
// cmd/triegraph wraps the pipeline in a thin CLI: it reads a graph
// description, runs one of the three builders, and writes the resulting
// pairs as newline-delimited JSON.
package triegraph

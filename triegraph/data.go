package triegraph

import (
	"github.com/seqgraph/triegraph/complexity"
	"github.com/seqgraph/triegraph/lloc"
	"github.com/seqgraph/triegraph/seqgraph"
	"github.com/seqgraph/triegraph/topo"
)

// Data is the owning aggregate of everything derived from one
// seqgraph.Graph before a trie builder runs over it: its topological
// order, its dense position compressor, and its per-node complexity
// bounds. Consumers only ever read from it once Build returns.
type Data struct {
	Graph      *seqgraph.Graph
	Order      *topo.Order
	Compressor *lloc.DenseCompressor
	Complexity complexity.Result
}

package lloc

import "github.com/seqgraph/triegraph/seqgraph"

// NodePos names a location inside a segment or just past it: offset ==
// len(segment) denotes the virtual slot immediately past the node, used
// as a construction-time cursor.
type NodePos struct {
	Node   seqgraph.NodeID
	Offset int
}

// LetterLoc is an opaque dense integer produced by a Compressor. No
// ordering is guaranteed or relied upon by any consumer.
type LetterLoc uint64

// Compressor maps a NodePos to a dense LetterLoc. Implementations must
// be total over every valid position in the graph they were built from.
type Compressor interface {
	Compress(NodePos) LetterLoc
}

// DenseCompressor is a reference Compressor: it assigns each node a base
// offset equal to the running total of (segment length + 1) positions
// (the +1 accounts for the virtual past-the-end slot), so
// Compress(NodePos{n, o}) == base[n] + o.
type DenseCompressor struct {
	base []LetterLoc
}

// NewDenseCompressor precomputes per-node base offsets for g.
func NewDenseCompressor(g *seqgraph.Graph) *DenseCompressor {
	n := g.NumNodes()
	base := make([]LetterLoc, n)
	var running LetterLoc
	for id := seqgraph.NodeID(0); int(id) < n; id++ {
		base[id] = running
		running += LetterLoc(len(g.Node(id).Segment) + 1)
	}
	return &DenseCompressor{base: base}
}

// Compress implements Compressor.
func (c *DenseCompressor) Compress(np NodePos) LetterLoc {
	return c.base[np.Node] + LetterLoc(np.Offset)
}

// Total returns the size of the dense LetterLoc domain this compressor
// covers (one past the highest value Compress can return for the last
// node's virtual past-the-end slot).
func (c *DenseCompressor) Total(g *seqgraph.Graph) LetterLoc {
	if g.NumNodes() == 0 {
		return 0
	}
	last := seqgraph.NodeID(g.NumNodes() - 1)
	return c.base[last] + LetterLoc(len(g.Node(last).Segment)+1)
}

package triebuild

import (
	"github.com/seqgraph/triegraph/alphabet"
	"github.com/seqgraph/triegraph/lloc"
	"github.com/seqgraph/triegraph/pairsink"
	"github.com/seqgraph/triegraph/seqgraph"
)

// BackTrack enumerates pairs by recursive DFS over graph positions,
// carrying one live k-mer. Exact and free of deduplication: every walk
// of exactly k symbols from a start yields exactly one emitted pair.
type BackTrack struct {
	graph      *seqgraph.Graph
	compressor lloc.Compressor
	sink       pairsink.Sink
	alpha      alphabet.Alphabet
	k          int
}

// NewBackTrack returns a BackTrack builder writing into sink.
func NewBackTrack(g *seqgraph.Graph, c lloc.Compressor, sink pairsink.Sink, alpha alphabet.Alphabet, k int) *BackTrack {
	return &BackTrack{graph: g, compressor: c, sink: sink, alpha: alpha, k: k}
}

// ComputePairs runs the DFS from every start in turn, each starting with
// an empty live k-mer.
func (bt *BackTrack) ComputePairs(starts []lloc.NodePos) {
	kmer := alphabet.Empty(bt.alpha, bt.k)
	for _, start := range starts {
		bt.walk(&kmer, start)
	}
}

func (bt *BackTrack) walk(kmer *alphabet.Kmer, np lloc.NodePos) {
	if kmer.IsComplete() {
		bt.sink.EmplaceBack(*kmer, bt.compressor.Compress(np))
		return
	}

	seg := bt.graph.Node(np.Node).Segment

	if np.Offset+1 == len(seg) {
		// Last symbol of the node: push it. If that completes the k-mer,
		// the window never needed a neighbor to finish, so it belongs to
		// this node's own boundary position, not to any one fan-out
		// target. Only an incomplete k-mer continues into the neighbors.
		kmer.PushBack(seg[np.Offset])
		if kmer.IsComplete() {
			bt.sink.EmplaceBack(*kmer, bt.compressor.Compress(lloc.NodePos{
				Node:   np.Node,
				Offset: np.Offset + 1,
			}))
		} else {
			for _, fwd := range bt.graph.ForwardFrom(np.Node) {
				bt.walk(kmer, lloc.NodePos{Node: fwd.NodeID, Offset: 0})
			}
		}
		kmer.PopBack()
		return
	}

	leftInNode := len(seg) - np.Offset
	leftInKmer := bt.k - kmer.Size()

	if leftInKmer < leftInNode {
		// The k-mer completes strictly inside this node: emit a copy,
		// the live k-mer is untouched.
		tmp := kmer.Clone()
		for i := 0; i < leftInKmer; i++ {
			tmp.PushBack(seg[np.Offset+i])
		}
		bt.sink.EmplaceBack(tmp, bt.compressor.Compress(lloc.NodePos{
			Node:   np.Node,
			Offset: np.Offset + leftInKmer,
		}))
		return
	}

	// Push the run up to (but not including) the node boundary onto the
	// live k-mer, recurse to handle the boundary, then restore.
	saved := kmer.Clone()
	for i := 0; i < leftInNode-1; i++ {
		kmer.PushBack(seg[np.Offset+i])
	}
	bt.walk(kmer, lloc.NodePos{Node: np.Node, Offset: np.Offset + leftInNode - 1})
	*kmer = saved
}

package triebuild

import (
	"container/heap"

	"github.com/soniakeys/bits"

	"github.com/seqgraph/triegraph/alphabet"
	"github.com/seqgraph/triegraph/lloc"
	"github.com/seqgraph/triegraph/pairsink"
	"github.com/seqgraph/triegraph/seqgraph"
	"github.com/seqgraph/triegraph/topo"
)

// NodeBFSSettings configures NodeBFS.
type NodeBFSSettings struct {
	// SetCutoff is the per-node kmer count at or above which presence
	// checks switch from a linear scan to a hash set. Default 500.
	SetCutoff int
}

// DefaultNodeBFSSettings returns SetCutoff 500.
func DefaultNodeBFSSettings() NodeBFSSettings {
	return NodeBFSSettings{SetCutoff: 500}
}

// kmerKey uniquely identifies a (possibly incomplete) Kmer for hashed
// presence lookups. Encode alone is ambiguous across different prefix
// lengths (e.g. an empty window and a single zero-symbol window both
// encode to 0), so size is folded into the key.
type kmerKey struct {
	size int
	code uint64
}

func keyOf(km alphabet.Kmer) kmerKey { return kmerKey{size: km.Size(), code: km.Encode()} }

// nodeKmerStore holds, per node, the ordered set of k-mer prefixes that
// have arrived at (node, 0) from upstream, an expansion cursor, and an
// adaptive presence structure: linear scan below cutoff, hash set at or
// above it.
type nodeKmerStore struct {
	cutoff  int
	kmers   [][]alphabet.Kmer
	sets    []map[kmerKey]struct{}
	doneIdx []int
}

func newNodeKmerStore(n, cutoff int) *nodeKmerStore {
	return &nodeKmerStore{
		cutoff:  cutoff,
		kmers:   make([][]alphabet.Kmer, n),
		sets:    make([]map[kmerKey]struct{}, n),
		doneIdx: make([]int, n),
	}
}

func (s *nodeKmerStore) exists(node seqgraph.NodeID, km alphabet.Kmer) bool {
	ks := s.kmers[node]
	if len(ks) >= s.cutoff {
		_, ok := s.sets[node][keyOf(km)]
		return ok
	}
	for _, k := range ks {
		if k.Equal(km) {
			return true
		}
	}
	return false
}

func (s *nodeKmerStore) add(node seqgraph.NodeID, km alphabet.Kmer) {
	s.kmers[node] = append(s.kmers[node], km)
	n := len(s.kmers[node])
	switch {
	case n == s.cutoff:
		set := make(map[kmerKey]struct{}, n)
		for _, k := range s.kmers[node] {
			set[keyOf(k)] = struct{}{}
		}
		s.sets[node] = set
	case n > s.cutoff:
		s.sets[node][keyOf(km)] = struct{}{}
	}
}

// nodeBFSHeap is the same heap.Interface shape as complexity's nodeHeap,
// keyed on topological rank via an injected comparator.
type nodeBFSHeap struct {
	ids  []seqgraph.NodeID
	less func(a, b seqgraph.NodeID) bool
}

func (h nodeBFSHeap) Len() int            { return len(h.ids) }
func (h nodeBFSHeap) Less(i, j int) bool  { return h.less(h.ids[i], h.ids[j]) }
func (h nodeBFSHeap) Swap(i, j int)       { h.ids[i], h.ids[j] = h.ids[j], h.ids[i] }
func (h *nodeBFSHeap) Push(x interface{}) { h.ids = append(h.ids, x.(seqgraph.NodeID)) }
func (h *nodeBFSHeap) Pop() interface{} {
	old := h.ids
	n := len(old)
	item := old[n-1]
	h.ids = old[:n-1]
	return item
}

// NodeBFS enumerates pairs node by node: a priority queue ordered by
// topological rank, per-node k-mer rolling along whole segments, and an
// adaptive presence check bounding duplicate propagation. Within the
// DAG projection a node is finalized before its descendants, so each
// prefix expands at most once per node; back-edges may re-enqueue
// ancestors but the presence check prevents duplicate work.
type NodeBFS struct {
	graph      *seqgraph.Graph
	order      *topo.Order
	compressor lloc.Compressor
	sink       pairsink.Sink
	alpha      alphabet.Alphabet
	k          int
	settings   NodeBFSSettings
}

// NewNodeBFS returns a NodeBFS builder writing into sink.
func NewNodeBFS(g *seqgraph.Graph, order *topo.Order, c lloc.Compressor, sink pairsink.Sink, alpha alphabet.Alphabet, k int, settings NodeBFSSettings) *NodeBFS {
	return &NodeBFS{graph: g, order: order, compressor: c, sink: sink, alpha: alpha, k: k, settings: settings}
}

// ComputePairs seeds every start with an empty k-mer at (start, 0) and
// drains the priority queue.
func (nb *NodeBFS) ComputePairs(starts []seqgraph.NodeID) {
	n := nb.graph.NumNodes()
	store := newNodeKmerStore(n, nb.settings.SetCutoff)
	inQ := bits.New(n)
	h := &nodeBFSHeap{less: func(a, b seqgraph.NodeID) bool { return nb.order.Less(a, b) }}

	for _, s := range starts {
		store.add(s, alphabet.Empty(nb.alpha, nb.k))
		inQ.SetBit(int(s), 1)
		heap.Push(h, s)
	}

	for h.Len() > 0 {
		nid := heap.Pop(h).(seqgraph.NodeID)
		inQ.SetBit(int(nid), 0)
		nb.step(nid, store, inQ, h)
	}
}

func (nb *NodeBFS) step(nid seqgraph.NodeID, store *nodeKmerStore, inQ bits.Bits, h *nodeBFSHeap) {
	seg := nb.graph.Node(nid).Segment
	loc := nb.compressor.Compress(lloc.NodePos{Node: nid, Offset: 0})
	kmers := store.kmers[nid]
	done := store.doneIdx[nid]

	if len(seg) >= nb.k {
		var kmer alphabet.Kmer
		for ; done < len(kmers); done++ {
			// An incoming prefix that already arrives complete was
			// already emitted at its producing node's own boundary
			// (see below); re-checking here would double-count it.
			kmer = kmers[done].Clone()
			nb.walkNode(&kmer, seg, loc, 1, nb.k)
		}
		store.doneIdx[nid] = done

		// positions k..|seg| inclusive: the window no longer depends on
		// which prefix arrived, so one representative kmer suffices. The
		// final position (the node boundary, offset == |seg|) must still
		// be checked for completion and emitted like any other step, not
		// just pushed for propagation.
		nb.walkNode(&kmer, seg, loc, nb.k, len(seg)+1)
		nb.pushNeighbours(nid, kmer, store, inQ, h)
		return
	}

	for ; done < len(kmers); done++ {
		kmer := kmers[done].Clone()
		nb.walkNode(&kmer, seg, loc, 1, len(seg)+1)
		nb.pushNeighbours(nid, kmer, store, inQ, h)
	}
	store.doneIdx[nid] = done
}

// walkNode rolls kmer through seg[start-1:end-1] (1-indexed positions
// [start, end)), emitting (kmer, loc+i) whenever the window completes.
func (nb *NodeBFS) walkNode(kmer *alphabet.Kmer, seg []alphabet.Symbol, loc lloc.LetterLoc, start, end int) {
	for i := start; i < end; i++ {
		kmer.PushBack(seg[i-1])
		if kmer.IsComplete() {
			nb.sink.EmplaceBack(*kmer, loc+lloc.LetterLoc(i))
		}
	}
}

func (nb *NodeBFS) pushNeighbours(nid seqgraph.NodeID, kmer alphabet.Kmer, store *nodeKmerStore, inQ bits.Bits, h *nodeBFSHeap) {
	for _, fwd := range nb.graph.ForwardFrom(nid) {
		if store.exists(fwd.NodeID, kmer) {
			continue
		}
		store.add(fwd.NodeID, kmer.Clone())
		if inQ.Bit(int(fwd.NodeID)) == 0 {
			inQ.SetBit(int(fwd.NodeID), 1)
			heap.Push(h, fwd.NodeID)
		}
	}
}

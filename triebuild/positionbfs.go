package triebuild

import (
	"github.com/seqgraph/triegraph/alphabet"
	"github.com/seqgraph/triegraph/lloc"
	"github.com/seqgraph/triegraph/pairsink"
	"github.com/seqgraph/triegraph/seqgraph"
)

// PositionBFSSettings configures PositionBFS.
type PositionBFSSettings struct {
	// CutEarlyThreshold bounds the BFS frontier size; 0 disables the
	// guard. Default 128.
	CutEarlyThreshold uint32
}

// DefaultPositionBFSSettings returns CutEarlyThreshold 128.
func DefaultPositionBFSSettings() PositionBFSSettings {
	return PositionBFSSettings{CutEarlyThreshold: 128}
}

// PositionBFSStats counts how each start was resolved; exposed so
// callers can wire it into metrics.
type PositionBFSStats struct {
	ShortKmer uint64
	ShortNext uint64
	FastSplit uint64
	Normal    uint64
}

type bfsEntry struct {
	kmer alphabet.Kmer
	pos  lloc.NodePos
}

// PositionBFS enumerates pairs per start: three ordered fast paths
// followed by a level-synchronous BFS over two alternating frontiers,
// with an early cutoff. Exact when no level exceeds CutEarlyThreshold;
// past it the BFS halts and emits whatever prefixes the frontier holds.
type PositionBFS struct {
	graph      *seqgraph.Graph
	compressor lloc.Compressor
	sink       pairsink.Sink
	alpha      alphabet.Alphabet
	k          int
	settings   PositionBFSSettings
	stats      PositionBFSStats

	current, next []bfsEntry
}

// NewPositionBFS returns a PositionBFS builder writing into sink.
func NewPositionBFS(g *seqgraph.Graph, c lloc.Compressor, sink pairsink.Sink, alpha alphabet.Alphabet, k int, settings PositionBFSSettings) *PositionBFS {
	return &PositionBFS{graph: g, compressor: c, sink: sink, alpha: alpha, k: k, settings: settings}
}

// Stats returns the fast-path/normal-path counters accumulated so far.
func (p *PositionBFS) Stats() PositionBFSStats { return p.stats }

// ComputePairs runs the per-start BFS (with fast paths) for every start.
func (p *PositionBFS) ComputePairs(starts []lloc.NodePos) {
	for _, start := range starts {
		p.bfs(start)
	}
}

func (p *PositionBFS) kmerFromSymbols(syms ...alphabet.Symbol) alphabet.Kmer {
	km := alphabet.Empty(p.alpha, p.k)
	for _, s := range syms {
		km.PushBack(s)
	}
	return km
}

func (p *PositionBFS) bfs(start lloc.NodePos) {
	seg := p.graph.Node(start.Node).Segment

	// Fast path: short k-mer.
	if start.Offset+p.k+1 < len(seg) {
		km := p.kmerFromSymbols(seg[start.Offset : start.Offset+p.k]...)
		p.sink.EmplaceBack(km, p.compressor.Compress(lloc.NodePos{Node: start.Node, Offset: start.Offset + p.k}))
		p.stats.ShortKmer++
		return
	}

	left := len(seg) - start.Offset

	// Fast path: short-next.
	if nxt, ok := p.graph.ForwardOne(start.Node); ok {
		nxtSeg := p.graph.Node(nxt).Segment
		if p.k-left < len(nxtSeg) {
			km := p.kmerFromSymbols(seg[start.Offset:]...)
			for i := 0; i < p.k-left; i++ {
				km.PushBack(nxtSeg[i])
			}
			p.sink.EmplaceBack(km, p.compressor.Compress(lloc.NodePos{Node: nxt, Offset: p.k - left}))
			p.stats.ShortNext++
			return
		}
	}

	// Fast path: fast split.
	fwdEdges := p.graph.ForwardFrom(start.Node)
	fastSplit := true
	for _, fwd := range fwdEdges {
		if p.k-left >= len(p.graph.Node(fwd.NodeID).Segment) {
			fastSplit = false
			break
		}
	}
	if fastSplit {
		base := p.kmerFromSymbols(seg[start.Offset:]...)
		for _, fwd := range fwdEdges {
			tmp := base.Clone()
			nxtSeg := p.graph.Node(fwd.NodeID).Segment
			for i := 0; i < p.k-left; i++ {
				tmp.PushBack(nxtSeg[i])
			}
			p.sink.EmplaceBack(tmp, p.compressor.Compress(lloc.NodePos{Node: fwd.NodeID, Offset: p.k - left}))
		}
		p.stats.FastSplit++
		return
	}

	p.stats.Normal++
	p.generalBFS(start)
}

func (p *PositionBFS) generalBFS(start lloc.NodePos) {
	p.current = p.current[:0]
	p.current = append(p.current, bfsEntry{kmer: alphabet.Empty(p.alpha, p.k), pos: start})

	threshold := p.settings.CutEarlyThreshold
	lvl := 0
	for lvl < p.k && (threshold == 0 || uint32(len(p.current)) < threshold) {
		p.next = p.next[:0]
		for _, e := range p.current {
			seg := p.graph.Node(e.pos.Node).Segment
			nk := e.kmer.Clone()
			nk.PushBack(seg[e.pos.Offset])
			if e.pos.Offset+1 < len(seg) {
				p.next = append(p.next, bfsEntry{kmer: nk, pos: lloc.NodePos{Node: e.pos.Node, Offset: e.pos.Offset + 1}})
				continue
			}
			// Landed on the node's last symbol. If that completed the
			// k-mer, the window is done without any neighbor's help, so
			// it belongs to this node's own boundary position; fanning
			// it out to neighbors would mislocate it (or drop it
			// entirely on a dead end). Only an incomplete k-mer needs to
			// keep going.
			if nk.IsComplete() {
				p.sink.EmplaceBack(nk, p.compressor.Compress(lloc.NodePos{Node: e.pos.Node, Offset: e.pos.Offset + 1}))
				continue
			}
			for _, fwd := range p.graph.ForwardFrom(e.pos.Node) {
				p.next = append(p.next, bfsEntry{kmer: nk.Clone(), pos: lloc.NodePos{Node: fwd.NodeID, Offset: 0}})
			}
		}
		p.current, p.next = p.next, p.current
		lvl++
	}

	for _, e := range p.current {
		p.sink.EmplaceBack(e.kmer, p.compressor.Compress(e.pos))
	}
}

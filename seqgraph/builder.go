package seqgraph

import (
	"fmt"

	"github.com/seqgraph/triegraph/alphabet"
)

// Builder assembles a Graph one node and edge at a time. It is not safe
// for concurrent use; build a Graph from a single goroutine, then share
// the resulting *Graph freely across readers.
type Builder struct {
	nodes []Node

	// pending edges, resolved into forward/backward adjacency at Build time.
	pendingFrom []NodeID
	pendingTo   []NodeID
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddNode appends a node with the given segment and opaque segment id,
// returning its dense NodeID. Returns ErrEmptySegment if seg is empty;
// a node with no letters has no place in this graph model.
func (b *Builder) AddNode(seg []alphabet.Symbol, segID string) (NodeID, error) {
	if len(seg) == 0 {
		return 0, fmt.Errorf("AddNode(%q): %w", segID, ErrEmptySegment)
	}
	cp := make([]alphabet.Symbol, len(seg))
	copy(cp, seg)
	id := NodeID(len(b.nodes))
	b.nodes = append(b.nodes, Node{Segment: cp, SegID: segID})
	return id, nil
}

// AddEdge records a directed edge from -> to. Edge ids are assigned at
// Build time once the full edge set is known; AddEdge itself never fails
// on a dangling reference so callers may add nodes and edges in any
// order, but Build validates every endpoint.
func (b *Builder) AddEdge(from, to NodeID) {
	b.pendingFrom = append(b.pendingFrom, from)
	b.pendingTo = append(b.pendingTo, to)
}

// Build validates all pending edges and produces an immutable *Graph.
// Edge ids are assigned densely across both directions: for edge i
// (0-indexed in AddEdge call order), the forward id is 2*i and the
// reverse id is 2*i+1, making ReverseEdge an involution.
func (b *Builder) Build() (*Graph, error) {
	n := len(b.nodes)
	for i, from := range b.pendingFrom {
		to := b.pendingTo[i]
		if int(from) < 0 || int(from) >= n {
			return nil, fmt.Errorf("Build: edge %d: %w (from=%d)", i, ErrNodeNotFound, from)
		}
		if int(to) < 0 || int(to) >= n {
			return nil, fmt.Errorf("Build: edge %d: %w (to=%d)", i, ErrNodeNotFound, to)
		}
	}

	m := len(b.pendingFrom)
	g := &Graph{
		nodes:     b.nodes,
		forward:   make([][]EdgeRef, n),
		backward:  make([][]EdgeRef, n),
		edges:     make([]EdgeRecord, 2*m),
		reverse:   make([]EdgeID, 2*m),
		isForward: make([]bool, 2*m),
	}

	for i := 0; i < m; i++ {
		from, to := b.pendingFrom[i], b.pendingTo[i]
		fwdID := EdgeID(2 * i)
		bwdID := EdgeID(2*i + 1)

		g.edges[fwdID] = EdgeRecord{EdgeID: fwdID, From: from, To: to}
		g.edges[bwdID] = EdgeRecord{EdgeID: bwdID, From: to, To: from}
		g.reverse[fwdID] = bwdID
		g.reverse[bwdID] = fwdID
		g.isForward[fwdID] = true
		g.isForward[bwdID] = false

		g.forward[from] = append(g.forward[from], EdgeRef{EdgeID: fwdID, NodeID: to})
		g.backward[to] = append(g.backward[to], EdgeRef{EdgeID: bwdID, NodeID: from})
	}

	return g, nil
}

package seqgraph

import "github.com/seqgraph/triegraph/alphabet"

// NodeID is a dense node identifier in [0, NumNodes).
type NodeID int

// EdgeID is a dense edge identifier. Edge ids span both directions: every
// logical edge u->v contributes one forward EdgeID and one backward
// EdgeID, related by ReverseEdge (an involution).
type EdgeID int

// Node is the read-only view of a single graph node: its symbol segment
// and an opaque, caller-assigned segment identifier (e.g. a contig/exon
// name from whatever produced the graph) carried through for diagnostics.
type Node struct {
	Segment []alphabet.Symbol
	SegID   string
}

// EdgeRef names one endpoint of traversal from a node: the edge used to
// reach it, and the node reached. ForwardFrom/BackwardFrom return these.
type EdgeRef struct {
	EdgeID EdgeID
	NodeID NodeID
}

// EdgeRecord is one entry of ForwardEdges(): a fully-named directed edge.
type EdgeRecord struct {
	EdgeID EdgeID
	From   NodeID
	To     NodeID
}

// Graph is the immutable, node-labeled directed graph consumed by the
// topological order, connected-component, complexity estimator, and trie
// builder packages. Construct one via Builder; a Graph is never mutated
// after Build returns it, so concurrent readers need no locking.
type Graph struct {
	nodes []Node

	// forward[n] / backward[n] list the edges leaving / entering node n.
	forward  [][]EdgeRef
	backward [][]EdgeRef

	// edges is indexed by EdgeID (spanning both directions) and holds the
	// fully-named record; reverse maps an EdgeID to its involution partner
	// in the opposite direction. isForward marks which half of edges was
	// added as the "primary" direction by the Builder, i.e. the set
	// returned by ForwardEdges.
	edges     []EdgeRecord
	reverse   []EdgeID
	isForward []bool
}

// NumNodes returns the number of nodes, |V|.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// Node returns the node data for id. Panics if id is out of range;
// callers are expected to only ever pass ids obtained from this Graph.
func (g *Graph) Node(id NodeID) Node { return g.nodes[id] }

// ForwardFrom returns the edges leaving id, in construction order.
func (g *Graph) ForwardFrom(id NodeID) []EdgeRef { return g.forward[id] }

// BackwardFrom returns the edges entering id, in construction order.
func (g *Graph) BackwardFrom(id NodeID) []EdgeRef { return g.backward[id] }

// ForwardEdges returns every logical edge in its primary (forward)
// direction, one record per edge added via Builder.AddEdge. Used by the
// complexity estimator's back-edge seeding phase.
func (g *Graph) ForwardEdges() []EdgeRecord {
	out := make([]EdgeRecord, 0, len(g.edges)/2)
	for i, rec := range g.edges {
		if g.isForward[i] {
			out = append(out, rec)
		}
	}
	return out
}

// ReverseEdge returns the EdgeID of the opposite-direction record for the
// same logical edge. ReverseEdge is an involution: ReverseEdge(ReverseEdge(e)) == e.
func (g *Graph) ReverseEdge(e EdgeID) EdgeID { return g.reverse[e] }

// NumEdgeIDs returns the total number of dense edge ids in use, spanning
// both directions (i.e. 2x the number of edges added via Builder.AddEdge).
// Useful for sizing per-edge-id arrays (e.g. back-edge classification).
func (g *Graph) NumEdgeIDs() int { return len(g.edges) }

// ForwardOne returns the unique forward neighbor of id, if it has exactly
// one outgoing edge. The second return is false when id has zero or more
// than one outgoing edge; Position-BFS's "short-next" fast path relies
// on this uniqueness.
func (g *Graph) ForwardOne(id NodeID) (NodeID, bool) {
	fwd := g.forward[id]
	if len(fwd) != 1 {
		return 0, false
	}
	return fwd[0].NodeID, true
}

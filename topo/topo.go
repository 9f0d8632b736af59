package topo

import "github.com/seqgraph/triegraph/seqgraph"

// color tracks DFS visitation state: white (unvisited), gray (on the
// current recursion stack), black (fully explored).
type color uint8

const (
	white color = iota
	gray
	black
)

// Order is the result of a topological sort with back-edge
// classification: a per-node rank consistent with every non-back edge,
// and a per-edge-id back-edge predicate.
type Order struct {
	order      []seqgraph.NodeID // nodes in ascending-rank order
	rank       []int             // rank[node] = position in the linear order
	isBackedge []bool            // indexed by EdgeID, valid for both directions of an edge
}

// Build runs a DFS-based topological sort over g, classifying every edge
// encountered while its target is gray as a back-edge (and its reverse
// counterpart, so IsBackedge answers consistently regardless of which
// direction's EdgeID a caller holds).
//
// Root selection is deterministic: nodes with no incoming edges are
// visited first, in ascending NodeID order, followed by any remaining
// unvisited nodes (graphs with no root, i.e. every node on some cycle) in
// ascending NodeID order. Classification is therefore reproducible for
// a fixed graph.
func Build(g *seqgraph.Graph) *Order {
	n := g.NumNodes()
	state := make([]color, n)
	order := make([]seqgraph.NodeID, 0, n)
	isBackedge := make([]bool, g.NumEdgeIDs())

	var visit func(id seqgraph.NodeID)
	visit = func(id seqgraph.NodeID) {
		state[id] = gray
		for _, e := range g.ForwardFrom(id) {
			switch state[e.NodeID] {
			case white:
				visit(e.NodeID)
			case gray:
				isBackedge[e.EdgeID] = true
				isBackedge[g.ReverseEdge(e.EdgeID)] = true
			case black:
				// Forward or cross edge: not a back-edge.
			}
		}
		state[id] = black
		order = append(order, id)
	}

	for id := seqgraph.NodeID(0); int(id) < n; id++ {
		if len(g.BackwardFrom(id)) == 0 && state[id] == white {
			visit(id)
		}
	}
	for id := seqgraph.NodeID(0); int(id) < n; id++ {
		if state[id] == white {
			visit(id)
		}
	}

	// order is currently DFS post-order; reverse it to get a linearization
	// where every non-back-edge (u->v) has rank(u) < rank(v).
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	rank := make([]int, n)
	for i, id := range order {
		rank[id] = i
	}

	return &Order{order: order, rank: rank, isBackedge: isBackedge}
}

// Rank returns id's position in the linear order, in [0, NumNodes).
func (o *Order) Rank(id seqgraph.NodeID) int { return o.rank[id] }

// Ordered returns every node in ascending-rank order, i.e. a linearization
// where every non-back-edge (u->v) has Rank(u) < Rank(v). Used by the
// complexity estimator's DAG sweep.
func (o *Order) Ordered() []seqgraph.NodeID { return o.order }

// IsBackedge reports whether e was classified as a back-edge. Valid for
// either direction's EdgeID of the same logical edge.
func (o *Order) IsBackedge(e seqgraph.EdgeID) bool { return o.isBackedge[e] }

// Less orders nodes by ascending rank; the complexity estimator and the
// Node-BFS builder key their min-priority-queues on it.
func (o *Order) Less(a, b seqgraph.NodeID) bool { return o.rank[a] < o.rank[b] }

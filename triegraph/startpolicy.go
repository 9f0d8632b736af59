package triegraph

import (
	"github.com/seqgraph/triegraph/complexity"
	"github.com/seqgraph/triegraph/lloc"
	"github.com/seqgraph/triegraph/seqgraph"
)

// StartPolicy selects the set of NodePos starts enumeration begins from,
// given the graph, its connected-component roots, and the complexity
// estimate computed over it.
type StartPolicy func(g *seqgraph.Graph, roots []seqgraph.NodeID, cx complexity.Result) []lloc.NodePos

// ComponentRootStarts is the default StartPolicy: one start per weakly
// connected component, at that component's representative node, offset
// 0. This is Node-BFS's natural seeding scheme, and a reasonable
// default for the other two builders as well.
func ComponentRootStarts(_ *seqgraph.Graph, roots []seqgraph.NodeID, _ complexity.Result) []lloc.NodePos {
	starts := make([]lloc.NodePos, len(roots))
	for i, r := range roots {
		starts[i] = lloc.NodePos{Node: r, Offset: 0}
	}
	return starts
}

// BelowThresholdStarts returns a StartPolicy that starts from every
// component root plus every other node whose estimated start bound is at
// or below threshold, at offset 0.
func BelowThresholdStarts(threshold uint64) StartPolicy {
	return func(g *seqgraph.Graph, roots []seqgraph.NodeID, cx complexity.Result) []lloc.NodePos {
		seen := make(map[seqgraph.NodeID]bool, len(roots))
		starts := make([]lloc.NodePos, 0, len(roots))
		for _, r := range roots {
			starts = append(starts, lloc.NodePos{Node: r, Offset: 0})
			seen[r] = true
		}
		for id := seqgraph.NodeID(0); int(id) < g.NumNodes(); id++ {
			if seen[id] {
				continue
			}
			if cx.Start[id] <= threshold {
				starts = append(starts, lloc.NodePos{Node: id, Offset: 0})
			}
		}
		return starts
	}
}

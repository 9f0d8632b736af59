package components

import "github.com/seqgraph/triegraph/seqgraph"

// Starts returns one representative NodeID per weakly-connected component
// of g, in ascending order of the representative's id.
func Starts(g *seqgraph.Graph) []seqgraph.NodeID {
	n := g.NumNodes()
	visited := make([]bool, n)
	var starts []seqgraph.NodeID

	for id := seqgraph.NodeID(0); int(id) < n; id++ {
		if visited[id] {
			continue
		}
		starts = append(starts, representative(g, id, visited))
	}
	return starts
}

// representative walks the weakly-connected component containing root via
// BFS over both forward and backward edges, marking every member visited,
// and returns the best representative found: the smallest-id node with no
// incoming edges, or (if none has zero in-degree) the smallest-id node in
// the component.
func representative(g *seqgraph.Graph, root seqgraph.NodeID, visited []bool) seqgraph.NodeID {
	queue := []seqgraph.NodeID{root}
	visited[root] = true

	var withNoIncoming, anyMember []seqgraph.NodeID

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		anyMember = append(anyMember, cur)
		if len(g.BackwardFrom(cur)) == 0 {
			withNoIncoming = append(withNoIncoming, cur)
		}

		for _, e := range g.ForwardFrom(cur) {
			if !visited[e.NodeID] {
				visited[e.NodeID] = true
				queue = append(queue, e.NodeID)
			}
		}
		for _, e := range g.BackwardFrom(cur) {
			if !visited[e.NodeID] {
				visited[e.NodeID] = true
				queue = append(queue, e.NodeID)
			}
		}
	}

	pool := withNoIncoming
	if len(pool) == 0 {
		pool = anyMember
	}
	best := pool[0]
	for _, id := range pool[1:] {
		if id < best {
			best = id
		}
	}
	return best
}

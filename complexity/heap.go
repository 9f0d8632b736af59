package complexity

import "github.com/seqgraph/triegraph/seqgraph"

// nodeHeap is a min-heap of NodeID keyed by an injected comparator,
// ordered by ascending topological rank in practice.
type nodeHeap struct {
	ids  []seqgraph.NodeID
	less func(a, b seqgraph.NodeID) bool
}

func (h nodeHeap) Len() int { return len(h.ids) }

func (h nodeHeap) Less(i, j int) bool { return h.less(h.ids[i], h.ids[j]) }

func (h nodeHeap) Swap(i, j int) { h.ids[i], h.ids[j] = h.ids[j], h.ids[i] }

func (h *nodeHeap) Push(x interface{}) { h.ids = append(h.ids, x.(seqgraph.NodeID)) }

func (h *nodeHeap) Pop() interface{} {
	old := h.ids
	n := len(old)
	item := old[n-1]
	h.ids = old[:n-1]
	return item
}

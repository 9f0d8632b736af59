package complexity

import (
	"container/heap"
	"fmt"

	"github.com/soniakeys/bits"

	"github.com/seqgraph/triegraph/alphabet"
	"github.com/seqgraph/triegraph/seqgraph"
	"github.com/seqgraph/triegraph/topo"
)

// Settings configures Estimate. Zero-value Settings is not valid; use
// DefaultSettings and override individual fields, mirroring the options
// pattern the rest of this module follows (e.g. seqgraph.Builder's
// construction-time validation).
type Settings struct {
	// Depth is the trie depth k.
	Depth int

	// BackedgeInit is the one-time seed every back-edge contributes on
	// its first pass. Typically 1.
	BackedgeInit uint64

	// BackedgeMaxTrav bounds how many times a single back-edge may
	// re-propagate growth before its contribution is treated as
	// "infinity" for the remainder of the fixed point. Typically a small
	// constant such as 2-4.
	BackedgeMaxTrav uint32
}

// DefaultSettings returns the typical defaults: a back-edge seed of 1
// and a traversal cap of 4.
func DefaultSettings(depth int) Settings {
	return Settings{
		Depth:           depth,
		BackedgeInit:    1,
		BackedgeMaxTrav: 4,
	}
}

// Result holds the per-node bounds computed by Estimate, indexed by
// seqgraph.NodeID.
type Result struct {
	Start []uint64
	End   []uint64
}

// backedgeState tracks the per-back-edge pushed/trav bookkeeping of the
// seeding and fixed-point phases. Only back-edges ever acquire an entry;
// absent entries behave as pushed = BackedgeInit, trav = 0.
type backedgeState struct {
	pushed uint64
	trav   uint32
}

// Estimate computes, per node, a saturated upper bound on the number of
// distinct length-k contexts entering it, using order for topological
// rank and back-edge classification. On an acyclic graph with
// BackedgeInit = 0 the bound is exact (modulo the sigma^k ceiling);
// otherwise it is a conservative over-approximation.
func Estimate(g *seqgraph.Graph, order *topo.Order, alpha alphabet.Alphabet, s Settings) (Result, error) {
	if s.Depth < 1 {
		return Result{}, fmt.Errorf("complexity.Estimate: %w", ErrInvalidDepth)
	}

	n := g.NumNodes()

	// oPwr[i] = sigma^i, saturating at sigma^Depth. The ceiling itself
	// is clamped below half the uint64 range so a saturated sum of two
	// clamped values cannot wrap.
	ceiling := alpha.PowClamped(s.Depth, ^uint64(0)>>1)
	oPwr := make([]uint64, s.Depth+1)
	oPwr[0] = 1
	for i := 1; i <= s.Depth; i++ {
		oPwr[i] = alpha.PowClamped(i, ceiling)
	}

	start := make([]uint64, n)
	end := make([]uint64, n)

	maxEnd := func(nid seqgraph.NodeID) uint64 {
		segLen := len(g.Node(nid).Segment)
		if segLen >= s.Depth {
			return 1
		}
		return oPwr[s.Depth-segLen]
	}
	incrStart := func(nid seqgraph.NodeID, incr uint64) {
		v := start[nid] + incr
		if v > ceiling || v < start[nid] {
			v = ceiling
		}
		start[nid] = v
	}
	computeEnd := func(nid seqgraph.NodeID) uint64 {
		me := maxEnd(nid)
		if start[nid] < me {
			return start[nid]
		}
		return me
	}

	// Phase 1: DAG sweep in topological order.
	for _, nid := range order.Ordered() {
		back := g.BackwardFrom(nid)
		if len(back) == 0 {
			start[nid] = 1
			end[nid] = 1
			continue
		}
		for _, bw := range back {
			if order.IsBackedge(bw.EdgeID) {
				incrStart(nid, s.BackedgeInit)
			} else {
				incrStart(nid, end[bw.NodeID])
			}
		}
		end[nid] = computeEnd(nid)
	}

	// Phase 2: seed back-edges and prime the fixed-point queue.
	states := map[seqgraph.EdgeID]*backedgeState{}
	inPQ := bits.New(n)
	h := &nodeHeap{less: func(a, b seqgraph.NodeID) bool { return order.Less(a, b) }}

	addPQ := func(nid seqgraph.NodeID) {
		if inPQ.Bit(int(nid)) == 0 {
			inPQ.SetBit(int(nid), 1)
			heap.Push(h, nid)
		}
	}
	getPushed := func(e seqgraph.EdgeID) uint64 {
		if st, ok := states[e]; ok {
			return st.pushed
		}
		return s.BackedgeInit
	}

	for _, edge := range g.ForwardEdges() {
		if !order.IsBackedge(edge.EdgeID) {
			continue
		}
		if end[edge.From] <= s.BackedgeInit {
			continue
		}
		incrStart(edge.To, end[edge.From]-s.BackedgeInit)
		states[edge.EdgeID] = &backedgeState{pushed: end[edge.From], trav: 1}
		addPQ(edge.To)
	}

	// Phase 3: fixed point over loops.
	for h.Len() > 0 {
		nid := heap.Pop(h).(seqgraph.NodeID)
		inPQ.SetBit(int(nid), 0)

		newEnd := computeEnd(nid)
		if newEnd == end[nid] {
			continue
		}
		delta := newEnd - end[nid]
		end[nid] = newEnd

		for _, fwd := range g.ForwardFrom(nid) {
			if !order.IsBackedge(fwd.EdgeID) {
				incrStart(fwd.NodeID, delta)
				addPQ(fwd.NodeID)
				continue
			}

			oldPushed := getPushed(fwd.EdgeID)
			if end[nid] <= oldPushed {
				continue
			}
			st, ok := states[fwd.EdgeID]
			if !ok {
				st = &backedgeState{pushed: s.BackedgeInit}
				states[fwd.EdgeID] = st
			}
			st.trav++
			if st.trav == s.BackedgeMaxTrav {
				st.pushed = maxEnd(nid)
			} else {
				st.pushed = end[nid]
			}
			incrStart(fwd.NodeID, st.pushed-oldPushed)
			addPQ(fwd.NodeID)
		}
	}

	return Result{Start: start, End: end}, nil
}

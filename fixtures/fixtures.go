// Package fixtures builds small synthetic seqgraph.Graph instances for
// exercising the complexity estimator and trie builders in tests:
// linear paths, cycles, stars, grids, and seeded random sparse graphs.
package fixtures

import (
	"fmt"
	"math/rand"

	"github.com/seqgraph/triegraph/alphabet"
	"github.com/seqgraph/triegraph/seqgraph"
)

// SegFn produces the segment symbols for node index i (0-based, in
// construction order). Constructors call it once per node.
type SegFn func(i int) []alphabet.Symbol

// ConstSeg returns a SegFn that always yields a copy of seg, useful when
// every node in a fixture carries the same content.
func ConstSeg(seg ...alphabet.Symbol) SegFn {
	return func(int) []alphabet.Symbol {
		cp := make([]alphabet.Symbol, len(seg))
		copy(cp, seg)
		return cp
	}
}

// SingleSymbol returns a SegFn yielding the one-symbol segment
// []Symbol{Symbol(i % mod)}, a convenient way to give every node in a
// topology fixture distinct-ish, deterministic content without the
// caller spelling out every node's letters.
func SingleSymbol(mod uint64) SegFn {
	return func(i int) []alphabet.Symbol {
		return []alphabet.Symbol{alphabet.Symbol(uint64(i) % mod)}
	}
}

const (
	methodPath   = "fixtures.Path"
	minPathNodes = 1
)

// Path builds a simple directed path of n nodes, 0 -> 1 -> ... -> n-1,
// with node i's segment produced by segFn(i).
func Path(segFn SegFn, n int) (*seqgraph.Graph, []seqgraph.NodeID, error) {
	if n < minPathNodes {
		return nil, nil, fmt.Errorf("%s: n=%d < min=%d", methodPath, n, minPathNodes)
	}

	b := seqgraph.NewBuilder()
	ids := make([]seqgraph.NodeID, n)
	for i := 0; i < n; i++ {
		id, err := b.AddNode(segFn(i), fmt.Sprintf("n%d", i))
		if err != nil {
			return nil, nil, fmt.Errorf("%s: AddNode(%d): %w", methodPath, i, err)
		}
		ids[i] = id
	}
	for i := 1; i < n; i++ {
		b.AddEdge(ids[i-1], ids[i])
	}
	g, err := b.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodPath, err)
	}
	return g, ids, nil
}

const (
	methodCycle   = "fixtures.Cycle"
	minCycleNodes = 2
)

// Cycle builds Path(segFn, n) and closes it with an edge n-1 -> 0,
// producing exactly one back-edge under topo.Build's ascending-id DFS
// root selection.
func Cycle(segFn SegFn, n int) (*seqgraph.Graph, []seqgraph.NodeID, error) {
	if n < minCycleNodes {
		return nil, nil, fmt.Errorf("%s: n=%d < min=%d", methodCycle, n, minCycleNodes)
	}

	b := seqgraph.NewBuilder()
	ids := make([]seqgraph.NodeID, n)
	for i := 0; i < n; i++ {
		id, err := b.AddNode(segFn(i), fmt.Sprintf("n%d", i))
		if err != nil {
			return nil, nil, fmt.Errorf("%s: AddNode(%d): %w", methodCycle, i, err)
		}
		ids[i] = id
	}
	for i := 0; i < n; i++ {
		b.AddEdge(ids[i], ids[(i+1)%n])
	}
	g, err := b.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodCycle, err)
	}
	return g, ids, nil
}

const (
	methodStar    = "fixtures.Star"
	minStarLeaves = 1
)

// Star builds a hub node plus numLeaves leaf nodes, with one directed
// edge from the hub to each leaf.
func Star(hubSeg SegFn, leafSeg SegFn, numLeaves int) (*seqgraph.Graph, seqgraph.NodeID, []seqgraph.NodeID, error) {
	if numLeaves < minStarLeaves {
		return nil, 0, nil, fmt.Errorf("%s: numLeaves=%d < min=%d", methodStar, numLeaves, minStarLeaves)
	}

	b := seqgraph.NewBuilder()
	hub, err := b.AddNode(hubSeg(0), "hub")
	if err != nil {
		return nil, 0, nil, fmt.Errorf("%s: AddNode(hub): %w", methodStar, err)
	}

	leaves := make([]seqgraph.NodeID, numLeaves)
	for i := 0; i < numLeaves; i++ {
		id, err := b.AddNode(leafSeg(i), fmt.Sprintf("leaf%d", i))
		if err != nil {
			return nil, 0, nil, fmt.Errorf("%s: AddNode(leaf%d): %w", methodStar, i, err)
		}
		leaves[i] = id
		b.AddEdge(hub, id)
	}

	g, err := b.Build()
	if err != nil {
		return nil, 0, nil, fmt.Errorf("%s: %w", methodStar, err)
	}
	return g, hub, leaves, nil
}

const (
	methodGrid  = "fixtures.Grid"
	minGridDim  = 1
	gridNoEmpty = "fixtures.Grid: rows and cols must be >= 1"
)

// Grid builds a rows x cols lattice of nodes with edges to the right
// neighbor (r,c)->(r,c+1) and the neighbor below (r,c)->(r+1,c); node
// (r,c) gets id r*cols+c and segment segFn(r*cols+c). A grid has many
// branch/merge points without any back-edge, useful for exercising the
// complexity estimator's fan-in accumulation without loops.
func Grid(segFn SegFn, rows, cols int) (*seqgraph.Graph, func(r, c int) seqgraph.NodeID, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, nil, fmt.Errorf("%s (rows=%d, cols=%d)", gridNoEmpty, rows, cols)
	}

	b := seqgraph.NewBuilder()
	ids := make([]seqgraph.NodeID, rows*cols)
	idx := func(r, c int) int { return r*cols + c }

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i := idx(r, c)
			id, err := b.AddNode(segFn(i), fmt.Sprintf("n%d_%d", r, c))
			if err != nil {
				return nil, nil, fmt.Errorf("%s: AddNode(%d,%d): %w", methodGrid, r, c, err)
			}
			ids[i] = id
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				b.AddEdge(ids[idx(r, c)], ids[idx(r, c+1)])
			}
			if r+1 < rows {
				b.AddEdge(ids[idx(r, c)], ids[idx(r+1, c)])
			}
		}
	}
	g, err := b.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodGrid, err)
	}
	at := func(r, c int) seqgraph.NodeID { return ids[idx(r, c)] }
	return g, at, nil
}

const methodRandomSparse = "fixtures.RandomSparse"

// RandomSparse builds n nodes and, for every ordered pair (i, j) with
// i != j, adds an edge i->j independently with probability edgeProb,
// using rng for the Bernoulli draws (seed it via rand.New(rand.NewSource(seed))
// for reproducible fixtures). The result may contain cycles; it exists to stress
// the complexity estimator's fixed point and NodeBFS's adaptive presence
// structure on graphs too irregular to hand-write.
func RandomSparse(segFn SegFn, n int, edgeProb float64, rng *rand.Rand) (*seqgraph.Graph, []seqgraph.NodeID, error) {
	if n < 1 {
		return nil, nil, fmt.Errorf("%s: n=%d < 1", methodRandomSparse, n)
	}
	if edgeProb < 0 || edgeProb > 1 {
		return nil, nil, fmt.Errorf("%s: edgeProb=%g out of [0,1]", methodRandomSparse, edgeProb)
	}

	b := seqgraph.NewBuilder()
	ids := make([]seqgraph.NodeID, n)
	for i := 0; i < n; i++ {
		id, err := b.AddNode(segFn(i), fmt.Sprintf("n%d", i))
		if err != nil {
			return nil, nil, fmt.Errorf("%s: AddNode(%d): %w", methodRandomSparse, i, err)
		}
		ids[i] = id
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if rng.Float64() < edgeProb {
				b.AddEdge(ids[i], ids[j])
			}
		}
	}
	g, err := b.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodRandomSparse, err)
	}
	return g, ids, nil
}

package topo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqgraph/triegraph/alphabet"
	"github.com/seqgraph/triegraph/seqgraph"
	"github.com/seqgraph/triegraph/topo"
)

func buildLinear(t *testing.T) (*seqgraph.Graph, seqgraph.NodeID, seqgraph.NodeID, seqgraph.NodeID) {
	t.Helper()
	b := seqgraph.NewBuilder()
	n0, err := b.AddNode([]alphabet.Symbol{0}, "n0")
	require.NoError(t, err)
	n1, err := b.AddNode([]alphabet.Symbol{1}, "n1")
	require.NoError(t, err)
	n2, err := b.AddNode([]alphabet.Symbol{2}, "n2")
	require.NoError(t, err)
	b.AddEdge(n0, n1)
	b.AddEdge(n1, n2)
	g, err := b.Build()
	require.NoError(t, err)
	return g, n0, n1, n2
}

func TestBuildLinearOrderNoBackedges(t *testing.T) {
	g, n0, n1, n2 := buildLinear(t)
	order := topo.Build(g)

	assert.Less(t, order.Rank(n0), order.Rank(n1))
	assert.Less(t, order.Rank(n1), order.Rank(n2))
	for _, e := range g.ForwardEdges() {
		assert.False(t, order.IsBackedge(e.EdgeID))
	}
}

func TestBuildBackedgeClassification(t *testing.T) {
	// 0 -> 1 -> 0, a 2-cycle: exactly one edge must classify as back.
	b := seqgraph.NewBuilder()
	n0, _ := b.AddNode([]alphabet.Symbol{0}, "n0")
	n1, _ := b.AddNode([]alphabet.Symbol{1}, "n1")
	b.AddEdge(n0, n1)
	b.AddEdge(n1, n0)
	g, err := b.Build()
	require.NoError(t, err)

	order := topo.Build(g)

	var backedges int
	for _, e := range g.ForwardEdges() {
		if order.IsBackedge(e.EdgeID) {
			backedges++
			// The reverse-direction id must report the same classification.
			assert.True(t, order.IsBackedge(g.ReverseEdge(e.EdgeID)))
		}
	}
	assert.Equal(t, 1, backedges)
}

func TestLessOrdersByRank(t *testing.T) {
	g, n0, n1, n2 := buildLinear(t)
	order := topo.Build(g)
	assert.True(t, order.Less(n0, n1))
	assert.True(t, order.Less(n1, n2))
	assert.False(t, order.Less(n2, n0))
}

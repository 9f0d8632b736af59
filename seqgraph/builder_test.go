package seqgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqgraph/triegraph/alphabet"
	"github.com/seqgraph/triegraph/seqgraph"
)

func syms(vals ...alphabet.Symbol) []alphabet.Symbol { return vals }

func TestBuilderEmptySegmentRejected(t *testing.T) {
	b := seqgraph.NewBuilder()
	_, err := b.AddNode(nil, "x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, seqgraph.ErrEmptySegment))
}

func TestBuilderDanglingEdgeRejected(t *testing.T) {
	b := seqgraph.NewBuilder()
	n0, err := b.AddNode(syms(0, 1), "n0")
	require.NoError(t, err)
	b.AddEdge(n0, seqgraph.NodeID(7))
	_, err = b.Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, seqgraph.ErrNodeNotFound))
}

func TestBuilderTwoNodeSplit(t *testing.T) {
	// node0: "AC", node1: "G", node2: "T", edges 0->1, 0->2.
	b := seqgraph.NewBuilder()
	n0, err := b.AddNode(syms(0, 1), "n0")
	require.NoError(t, err)
	n1, err := b.AddNode(syms(2), "n1")
	require.NoError(t, err)
	n2, err := b.AddNode(syms(3), "n2")
	require.NoError(t, err)
	b.AddEdge(n0, n1)
	b.AddEdge(n0, n2)

	g, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, 3, g.NumNodes())
	fwd := g.ForwardFrom(n0)
	require.Len(t, fwd, 2)
	assert.Equal(t, n1, fwd[0].NodeID)
	assert.Equal(t, n2, fwd[1].NodeID)

	bwd := g.BackwardFrom(n1)
	require.Len(t, bwd, 1)
	assert.Equal(t, n0, bwd[0].NodeID)

	// ReverseEdge is an involution.
	for _, e := range g.ForwardEdges() {
		rev := g.ReverseEdge(e.EdgeID)
		assert.Equal(t, e.EdgeID, g.ReverseEdge(rev))
	}

	nxt, ok := g.ForwardOne(n1)
	assert.False(t, ok) // n1 has no outgoing edges
	_ = nxt

	nxt, ok = g.ForwardOne(n0)
	assert.False(t, ok) // n0 has two outgoing edges, not unique
	_ = nxt
}

func TestForwardOneUnique(t *testing.T) {
	b := seqgraph.NewBuilder()
	n0, _ := b.AddNode(syms(0), "n0")
	n1, _ := b.AddNode(syms(1), "n1")
	b.AddEdge(n0, n1)
	g, err := b.Build()
	require.NoError(t, err)

	nxt, ok := g.ForwardOne(n0)
	require.True(t, ok)
	assert.Equal(t, n1, nxt)
}

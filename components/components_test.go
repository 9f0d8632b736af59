package components_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqgraph/triegraph/alphabet"
	"github.com/seqgraph/triegraph/components"
	"github.com/seqgraph/triegraph/seqgraph"
)

func node(t *testing.T, b *seqgraph.Builder, sym alphabet.Symbol, id string) seqgraph.NodeID {
	t.Helper()
	n, err := b.AddNode([]alphabet.Symbol{sym}, id)
	require.NoError(t, err)
	return n
}

func TestStartsSingleComponentPrefersRoot(t *testing.T) {
	b := seqgraph.NewBuilder()
	n0 := node(t, b, 0, "n0")
	n1 := node(t, b, 1, "n1")
	n2 := node(t, b, 2, "n2")
	b.AddEdge(n0, n1)
	b.AddEdge(n1, n2)
	g, err := b.Build()
	require.NoError(t, err)

	starts := components.Starts(g)
	require.Len(t, starts, 1)
	assert.Equal(t, n0, starts[0])
}

func TestStartsTwoDisjointComponents(t *testing.T) {
	b := seqgraph.NewBuilder()
	a0 := node(t, b, 0, "a0")
	a1 := node(t, b, 1, "a1")
	b0 := node(t, b, 2, "b0")
	b1 := node(t, b, 3, "b1")
	b.AddEdge(a0, a1)
	b.AddEdge(b0, b1)
	g, err := b.Build()
	require.NoError(t, err)

	starts := components.Starts(g)
	require.Len(t, starts, 2)
	assert.Equal(t, a0, starts[0])
	assert.Equal(t, b0, starts[1])
}

func TestStartsPureCycleHasNoRoot(t *testing.T) {
	b := seqgraph.NewBuilder()
	n0 := node(t, b, 0, "n0")
	n1 := node(t, b, 1, "n1")
	b.AddEdge(n0, n1)
	b.AddEdge(n1, n0)
	g, err := b.Build()
	require.NoError(t, err)

	starts := components.Starts(g)
	require.Len(t, starts, 1)
	// No node has zero in-degree; fall back to smallest id in component.
	assert.Equal(t, n0, starts[0])
}

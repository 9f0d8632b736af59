package graphspec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqgraph/triegraph/internal/graphspec"
)

const validYAML = `
alphabet: ACGT
nodes:
  - id: n0
    segment: AC
  - id: n1
    segment: G
  - id: n2
    segment: T
edges:
  - from: n0
    to: n1
  - from: n0
    to: n2
`

func TestParseAndBuildValidSpec(t *testing.T) {
	spec, err := graphspec.Parse([]byte(validYAML))
	require.NoError(t, err)

	g, alpha, err := spec.Build()
	require.NoError(t, err)
	assert.Equal(t, uint64(4), alpha.Size())
	assert.Equal(t, 3, g.NumNodes())
	assert.Len(t, g.ForwardFrom(0), 2)
}

func TestBuildRejectsMissingAlphabet(t *testing.T) {
	spec, err := graphspec.Parse([]byte("nodes:\n  - id: n0\n    segment: A\n"))
	require.NoError(t, err)

	_, _, err = spec.Build()
	assert.ErrorIs(t, err, graphspec.ErrNoAlphabet)
}

func TestBuildRejectsDuplicateNodeID(t *testing.T) {
	spec, err := graphspec.Parse([]byte(`
alphabet: AC
nodes:
  - id: n0
    segment: A
  - id: n0
    segment: C
`))
	require.NoError(t, err)

	_, _, err = spec.Build()
	assert.ErrorIs(t, err, graphspec.ErrDuplicateNode)
}

func TestBuildRejectsUnknownSymbol(t *testing.T) {
	spec, err := graphspec.Parse([]byte(`
alphabet: AC
nodes:
  - id: n0
    segment: AG
`))
	require.NoError(t, err)

	_, _, err = spec.Build()
	assert.ErrorIs(t, err, graphspec.ErrUnknownSymbol)
}

func TestBuildRejectsUnknownEdgeEndpoint(t *testing.T) {
	spec, err := graphspec.Parse([]byte(`
alphabet: A
nodes:
  - id: n0
    segment: A
edges:
  - from: n0
    to: missing
`))
	require.NoError(t, err)

	_, _, err = spec.Build()
	assert.ErrorIs(t, err, graphspec.ErrUnknownNode)
}

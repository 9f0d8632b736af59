package triebuild_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqgraph/triegraph/alphabet"
	"github.com/seqgraph/triegraph/lloc"
	"github.com/seqgraph/triegraph/pairsink"
	"github.com/seqgraph/triegraph/seqgraph"
	"github.com/seqgraph/triegraph/triebuild"
)

// TestPositionBFSShortKmerFastPath covers the short-kmer fast path: k
// fully fits inside the remainder of the start node's segment.
func TestPositionBFSShortKmerFastPath(t *testing.T) {
	b := seqgraph.NewBuilder()
	n0, err := b.AddNode(symsFromString("ACGTAA"), "n0")
	require.NoError(t, err)
	g, err := b.Build()
	require.NoError(t, err)

	alpha := alphabet.MustNew(4)
	compressor := lloc.NewDenseCompressor(g)
	sink := pairsink.NewSlice()
	p := triebuild.NewPositionBFS(g, compressor, sink, alpha, 2, triebuild.DefaultPositionBFSSettings())

	p.ComputePairs([]lloc.NodePos{{Node: n0, Offset: 0}})

	require.Len(t, sink.Pairs, 1)
	assert.Equal(t, uint64(1), p.Stats().ShortKmer)
	assert.Equal(t, symsFromString("AC"), sink.Pairs[0].Kmer.Symbols())
	assert.Equal(t, compressor.Compress(lloc.NodePos{Node: n0, Offset: 2}), sink.Pairs[0].Loc)
}

// TestPositionBFSShortNextFastPath covers the single-forward-neighbor
// concatenation fast path.
func TestPositionBFSShortNextFastPath(t *testing.T) {
	b := seqgraph.NewBuilder()
	n0, err := b.AddNode(symsFromString("AC"), "n0")
	require.NoError(t, err)
	n1, err := b.AddNode(symsFromString("GTTT"), "n1")
	require.NoError(t, err)
	b.AddEdge(n0, n1)
	g, err := b.Build()
	require.NoError(t, err)

	alpha := alphabet.MustNew(4)
	compressor := lloc.NewDenseCompressor(g)
	sink := pairsink.NewSlice()
	p := triebuild.NewPositionBFS(g, compressor, sink, alpha, 3, triebuild.DefaultPositionBFSSettings())

	p.ComputePairs([]lloc.NodePos{{Node: n0, Offset: 0}})

	require.Len(t, sink.Pairs, 1)
	assert.Equal(t, uint64(1), p.Stats().ShortNext)
	assert.Equal(t, symsFromString("ACG"), sink.Pairs[0].Kmer.Symbols())
	assert.Equal(t, compressor.Compress(lloc.NodePos{Node: n1, Offset: 1}), sink.Pairs[0].Loc)
}

// TestPositionBFSFastSplitFastPath covers the all-neighbors-long fast
// path when the start node branches.
func TestPositionBFSFastSplitFastPath(t *testing.T) {
	b := seqgraph.NewBuilder()
	n0, err := b.AddNode(symsFromString("A"), "n0")
	require.NoError(t, err)
	n1, err := b.AddNode(symsFromString("CCC"), "n1")
	require.NoError(t, err)
	n2, err := b.AddNode(symsFromString("GGG"), "n2")
	require.NoError(t, err)
	b.AddEdge(n0, n1)
	b.AddEdge(n0, n2)
	g, err := b.Build()
	require.NoError(t, err)

	alpha := alphabet.MustNew(4)
	compressor := lloc.NewDenseCompressor(g)
	sink := pairsink.NewSlice()
	p := triebuild.NewPositionBFS(g, compressor, sink, alpha, 2, triebuild.DefaultPositionBFSSettings())

	p.ComputePairs([]lloc.NodePos{{Node: n0, Offset: 0}})

	require.Len(t, sink.Pairs, 2)
	assert.Equal(t, uint64(1), p.Stats().FastSplit)
	got := pairSet(sink.Pairs)
	assert.Contains(t, got, "AC")
	assert.Contains(t, got, "AG")
}

// TestPositionBFSMatchesBackTrackWhenUncut: with the cutoff disabled,
// Position-BFS's general path agrees with Back-Track on a branch the
// fast paths don't shortcut.
func TestPositionBFSMatchesBackTrackWhenUncut(t *testing.T) {
	b := seqgraph.NewBuilder()
	n0, err := b.AddNode(symsFromString("A"), "n0")
	require.NoError(t, err)
	n1, err := b.AddNode(symsFromString("C"), "n1")
	require.NoError(t, err)
	n2, err := b.AddNode(symsFromString("G"), "n2")
	require.NoError(t, err)
	n3, err := b.AddNode(symsFromString("TT"), "n3")
	require.NoError(t, err)
	b.AddEdge(n0, n1)
	b.AddEdge(n1, n2)
	b.AddEdge(n1, n3)
	g, err := b.Build()
	require.NoError(t, err)

	alpha := alphabet.MustNew(4)
	compressor := lloc.NewDenseCompressor(g)

	btSink := pairsink.NewSlice()
	bt := triebuild.NewBackTrack(g, compressor, btSink, alpha, 3)
	bt.ComputePairs([]lloc.NodePos{{Node: n0, Offset: 0}})

	pbfsSink := pairsink.NewSlice()
	settings := triebuild.PositionBFSSettings{CutEarlyThreshold: 0}
	p := triebuild.NewPositionBFS(g, compressor, pbfsSink, alpha, 3, settings)
	p.ComputePairs([]lloc.NodePos{{Node: n0, Offset: 0}})

	assert.Equal(t, pairSet(btSink.Pairs), pairSet(pbfsSink.Pairs))
}

// TestPositionBFSCutEarlyEmitsShortPrefixes: when the frontier reaches
// CutEarlyThreshold, the BFS halts before k levels and emits prefixes
// shorter than k, one per surviving frontier entry.
func TestPositionBFSCutEarlyEmitsShortPrefixes(t *testing.T) {
	// A binary-branching tree three levels deep: root -> {c1,c2} -> {d1..d4}.
	b := seqgraph.NewBuilder()
	root, err := b.AddNode(symsFromString("A"), "root")
	require.NoError(t, err)
	var mid []seqgraph.NodeID
	for i := 0; i < 2; i++ {
		m, err := b.AddNode(symsFromString("C"), "mid")
		require.NoError(t, err)
		b.AddEdge(root, m)
		mid = append(mid, m)
	}
	for _, m := range mid {
		for i := 0; i < 2; i++ {
			leaf, err := b.AddNode(symsFromString("GG"), "leaf")
			require.NoError(t, err)
			b.AddEdge(m, leaf)
		}
	}
	g, err := b.Build()
	require.NoError(t, err)

	alpha := alphabet.MustNew(4)
	compressor := lloc.NewDenseCompressor(g)
	sink := pairsink.NewSlice()
	settings := triebuild.PositionBFSSettings{CutEarlyThreshold: 2}
	p := triebuild.NewPositionBFS(g, compressor, sink, alpha, 4, settings)

	p.ComputePairs([]lloc.NodePos{{Node: root, Offset: 0}})

	// Threshold 2 means the loop halts as soon as the frontier reaches 2,
	// i.e. after expanding past root into its two children: one push has
	// happened (root's own symbol), so every emitted kmer has length 1.
	require.Len(t, sink.Pairs, 2)
	for _, pr := range sink.Pairs {
		assert.Equal(t, 1, pr.Kmer.Size())
		assert.False(t, pr.Kmer.IsComplete())
	}
}

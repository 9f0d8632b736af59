package triegraph

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/seqgraph/triegraph/alphabet"
	"github.com/seqgraph/triegraph/complexity"
	"github.com/seqgraph/triegraph/components"
	"github.com/seqgraph/triegraph/internal/config"
	"github.com/seqgraph/triegraph/lloc"
	"github.com/seqgraph/triegraph/pairsink"
	"github.com/seqgraph/triegraph/seqgraph"
	"github.com/seqgraph/triegraph/topo"
	"github.com/seqgraph/triegraph/triebuild"
)

// Options configures one Build invocation. Zero-value fields fall back
// to defaults: AlphabetSize to
// config.DefaultAlphabetSize, Complexity to complexity.DefaultSettings(K),
// PositionBFS/NodeBFS to their respective Default*Settings, and
// StartPolicy to ComponentRootStarts.
type Options struct {
	K            int
	AlphabetSize uint64
	Builder      config.Builder

	StartPolicy StartPolicy
	Complexity  complexity.Settings
	PositionBFS triebuild.PositionBFSSettings
	NodeBFS     triebuild.NodeBFSSettings
}

// Result is everything one Build run produced: the derived Data
// aggregate, the collected pairs, Position-BFS's fast-path counters (zero
// for the other two builders), how many starts the policy resolved, a
// correlation id for logs/metrics, and wall-clock duration.
type Result struct {
	RunID    uuid.UUID
	Data     *Data
	Sink     *pairsink.Slice
	Stats    triebuild.PositionBFSStats
	Starts   int
	Duration time.Duration
}

// Build runs the full pipeline over g: topological order, component
// roots, complexity estimation, start-policy selection, then the builder
// named by opts.Builder, collecting its output into a fresh pairsink.Slice.
func Build(g *seqgraph.Graph, opts Options) (*Result, error) {
	started := time.Now()

	if g == nil {
		return nil, fmt.Errorf("triegraph.Build: %w", ErrNilGraph)
	}
	if opts.K <= 0 {
		return nil, fmt.Errorf("triegraph.Build: %w", ErrInvalidDepth)
	}

	alphaSize := opts.AlphabetSize
	if alphaSize == 0 {
		alphaSize = config.DefaultAlphabetSize
	}
	alpha, err := alphabet.New(alphaSize)
	if err != nil {
		return nil, fmt.Errorf("triegraph.Build: %w", err)
	}

	order := topo.Build(g)
	roots := components.Starts(g)

	cxSettings := opts.Complexity
	if cxSettings.Depth == 0 {
		cxSettings = complexity.DefaultSettings(opts.K)
	}
	cx, err := complexity.Estimate(g, order, alpha, cxSettings)
	if err != nil {
		return nil, fmt.Errorf("triegraph.Build: %w", err)
	}

	compressor := lloc.NewDenseCompressor(g)
	data := &Data{Graph: g, Order: order, Compressor: compressor, Complexity: cx}

	policy := opts.StartPolicy
	if policy == nil {
		policy = ComponentRootStarts
	}
	starts := policy(g, roots, cx)
	if len(starts) == 0 {
		return nil, fmt.Errorf("triegraph.Build: %w", ErrNoStarts)
	}

	sink := pairsink.NewSlice()
	var stats triebuild.PositionBFSStats

	switch opts.Builder {
	case config.BuilderBackTrack:
		bt := triebuild.NewBackTrack(g, compressor, sink, alpha, opts.K)
		bt.ComputePairs(starts)

	case config.BuilderPositionBFS:
		settings := opts.PositionBFS
		if settings == (triebuild.PositionBFSSettings{}) {
			settings = triebuild.DefaultPositionBFSSettings()
		}
		pb := triebuild.NewPositionBFS(g, compressor, sink, alpha, opts.K, settings)
		pb.ComputePairs(starts)
		stats = pb.Stats()

	case config.BuilderNodeBFS:
		settings := opts.NodeBFS
		if settings == (triebuild.NodeBFSSettings{}) {
			settings = triebuild.DefaultNodeBFSSettings()
		}
		nb := triebuild.NewNodeBFS(g, order, compressor, sink, alpha, opts.K, settings)
		nodeStarts := make([]seqgraph.NodeID, len(starts))
		for i, s := range starts {
			nodeStarts[i] = s.Node
		}
		nb.ComputePairs(nodeStarts)

	default:
		return nil, fmt.Errorf("triegraph.Build: %w: %q", ErrUnknownBuilder, opts.Builder)
	}

	return &Result{
		RunID:    uuid.New(),
		Data:     data,
		Sink:     sink,
		Stats:    stats,
		Starts:   len(starts),
		Duration: time.Since(started),
	}, nil
}

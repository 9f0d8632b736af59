package triegraph

import "errors"

// Sentinel errors for Build's precondition checks.
var (
	// ErrNilGraph indicates Build was called with a nil *seqgraph.Graph.
	ErrNilGraph = errors.New("triegraph: graph must not be nil")

	// ErrInvalidDepth indicates Options.K was <= 0.
	ErrInvalidDepth = errors.New("triegraph: k must be positive")

	// ErrNoStarts indicates the resolved StartPolicy produced zero starts,
	// e.g. an empty graph.
	ErrNoStarts = errors.New("triegraph: start policy produced no starts")

	// ErrUnknownBuilder indicates Options.Builder named something other
	// than config.BuilderBackTrack, config.BuilderPositionBFS, or
	// config.BuilderNodeBFS.
	ErrUnknownBuilder = errors.New("triegraph: unknown builder")
)

package seqgraph

import "errors"

// Sentinel errors for Builder validation. Graph-shape precondition
// violations are fatal: the Builder is the layer responsible for
// rejecting malformed graphs before any algorithm runs over them.
var (
	// ErrEmptySegment indicates a node was added with a zero-length segment.
	ErrEmptySegment = errors.New("seqgraph: node segment must be non-empty")

	// ErrNodeNotFound indicates an edge referenced a node id that was
	// never added via AddNode.
	ErrNodeNotFound = errors.New("seqgraph: node id not found")
)

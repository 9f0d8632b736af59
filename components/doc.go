// Package components finds one seed node per weakly-connected component
// of a seqgraph.Graph, for use as the Node-BFS builder's starting set.
//
// Traversal ignores edge direction (treats forward and backward edges
// alike) to find components; within each component, a node with no
// incoming edges is preferred as the representative when one exists,
// falling back to the smallest NodeID in the component otherwise.
package components

// Package fixtures provides small, deterministic seqgraph.Graph builders
// used across this module's test suites: linear paths, cycles, stars,
// grids, and seeded random sparse graphs. None of this is part of the
// production pipeline; it exists purely to give algorithm tests a
// convenient, shared way to construct graph shapes.
package fixtures

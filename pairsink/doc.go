// Package pairsink defines the append-only (Kmer, LetterLoc) collector
// consumed by the triebuild builders. A Sink exposes a capacity hint and
// an append operation; duplicates are allowed by design and
// deduplication, if desired, is a downstream concern.
//
// Slice is the default in-memory Sink. Mapped adapts a Sink of one pair
// shape into another by applying caller-supplied projections to each
// component before the append reaches the wrapped collector.
package pairsink

package pairsink

import (
	"github.com/seqgraph/triegraph/alphabet"
	"github.com/seqgraph/triegraph/lloc"
)

// Mapped adapts a collector whose native pair shape is (K2, L2) so
// builders can append (alphabet.Kmer, lloc.LetterLoc) pairs through it.
// KmerMap and LocMap project each component before it reaches the
// wrapped collector.
type Mapped[K2, L2 any] struct {
	pairs   MappedAppender[K2, L2]
	KmerMap func(alphabet.Kmer) K2
	LocMap  func(lloc.LetterLoc) L2
}

// MappedAppender is the backing collector a Mapped sink writes projected
// pairs into: a caller-defined collector of its own pair type, or a
// *Slice when K2 and L2 are alphabet.Kmer and lloc.LetterLoc.
type MappedAppender[K2, L2 any] interface {
	Reserve(n int)
	EmplaceBack(a K2, b L2)
}

// NewMapped returns a Sink that projects every (Kmer, LetterLoc) through
// kmerMap/locMap before appending to pairs.
func NewMapped[K2, L2 any](pairs MappedAppender[K2, L2], kmerMap func(alphabet.Kmer) K2, locMap func(lloc.LetterLoc) L2) *Mapped[K2, L2] {
	return &Mapped[K2, L2]{pairs: pairs, KmerMap: kmerMap, LocMap: locMap}
}

// Reserve forwards the capacity hint to the wrapped collector.
func (m *Mapped[K2, L2]) Reserve(n int) { m.pairs.Reserve(n) }

// EmplaceBack projects km and loc through KmerMap/LocMap and appends the
// result to the wrapped collector.
func (m *Mapped[K2, L2]) EmplaceBack(km alphabet.Kmer, loc lloc.LetterLoc) {
	m.pairs.EmplaceBack(m.KmerMap(km), m.LocMap(loc))
}

package pairsink

import (
	"github.com/seqgraph/triegraph/alphabet"
	"github.com/seqgraph/triegraph/lloc"
)

// Sink is the append-only collector every triebuild builder writes into:
// a capacity hint plus an append. Implementations must tolerate
// duplicate pairs; builders emit them by design.
type Sink interface {
	// Reserve hints the sink to preallocate for at least n more pairs.
	// Purely advisory: implementations may ignore it.
	Reserve(n int)

	// EmplaceBack appends one (kmer, loc) pair.
	EmplaceBack(km alphabet.Kmer, loc lloc.LetterLoc)
}

// Pair is one stored (Kmer, LetterLoc) entry, as held by Slice.
type Pair struct {
	Kmer alphabet.Kmer
	Loc  lloc.LetterLoc
}

// Slice is the default Sink: an in-memory, growable slice of Pair.
type Slice struct {
	Pairs []Pair
}

// NewSlice returns an empty Slice.
func NewSlice() *Slice {
	return &Slice{}
}

// Reserve grows the backing slice's capacity by n if needed.
func (s *Slice) Reserve(n int) {
	if n <= 0 {
		return
	}
	if have := cap(s.Pairs) - len(s.Pairs); have < n {
		grown := make([]Pair, len(s.Pairs), len(s.Pairs)+n)
		copy(grown, s.Pairs)
		s.Pairs = grown
	}
}

// EmplaceBack appends (km, loc) to Pairs. km is cloned so later mutation
// of the caller's rolling k-mer (alphabet.Kmer.PushBack) cannot alter an
// already-emitted pair.
func (s *Slice) EmplaceBack(km alphabet.Kmer, loc lloc.LetterLoc) {
	s.Pairs = append(s.Pairs, Pair{Kmer: km.Clone(), Loc: loc})
}

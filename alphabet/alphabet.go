package alphabet

import (
	"errors"
	"fmt"
)

// Sentinel errors for alphabet construction and symbol validation.
var (
	// ErrInvalidSize indicates an Alphabet was constructed with Size < 1.
	ErrInvalidSize = errors.New("alphabet: size must be at least 1")

	// ErrSymbolOutOfRange indicates a Symbol value >= Size (or the reserved
	// Epsilon value) was passed where a valid in-alphabet symbol is required.
	ErrSymbolOutOfRange = errors.New("alphabet: symbol out of range")
)

// Symbol is a single letter drawn from an Alphabet, represented densely
// in [0, Size). The Holder width is chosen wide enough that no alphabet
// used in practice (DNA σ=4, amino acids σ=20-25, byte-oriented σ=256)
// overflows it.
type Symbol uint32

// Alphabet is a finite, fixed-size symbol set. The zero value is invalid;
// use New to construct one.
//
// Epsilon is one past the valid symbol range and is never produced by
// PushBack; it exists for callers that need an out-of-band marker
// (e.g. "no symbol here").
type Alphabet struct {
	size uint64
}

// New constructs an Alphabet with the given number of distinct symbols.
// Returns ErrInvalidSize if size < 1.
func New(size uint64) (Alphabet, error) {
	if size < 1 {
		return Alphabet{}, fmt.Errorf("alphabet.New(%d): %w", size, ErrInvalidSize)
	}
	return Alphabet{size: size}, nil
}

// MustNew is New but panics on error; useful for package-level fixtures
// and tests where size is a compile-time constant.
func MustNew(size uint64) Alphabet {
	a, err := New(size)
	if err != nil {
		panic(err)
	}
	return a
}

// Size returns σ, the number of distinct symbols in the alphabet.
func (a Alphabet) Size() uint64 { return a.size }

// Epsilon returns the reserved out-of-band symbol value (Size itself).
func (a Alphabet) Epsilon() Symbol { return Symbol(a.size) }

// Valid reports whether s is a genuine in-range symbol (excludes Epsilon).
func (a Alphabet) Valid(s Symbol) bool { return uint64(s) < a.size }

// Validate returns ErrSymbolOutOfRange if s is not a valid in-range symbol.
func (a Alphabet) Validate(s Symbol) error {
	if !a.Valid(s) {
		return fmt.Errorf("alphabet.Validate(%d): %w", s, ErrSymbolOutOfRange)
	}
	return nil
}

// PowClamped returns a.Size()^exp, saturating at ceiling rather than
// overflowing. Complexity estimation and trie building use it to compute
// the sigma^k ceiling without risking wraparound; ceiling must be large
// enough that no legitimate power is itself clamped (callers pass
// math.MaxUint64 when they just want the unclamped power).
func (a Alphabet) PowClamped(exp int, ceiling uint64) uint64 {
	if exp <= 0 {
		return 1
	}
	result := uint64(1)
	for i := 0; i < exp; i++ {
		if a.size != 0 && result > ceiling/a.size {
			// Next multiplication would overflow past ceiling; clamp now.
			return ceiling
		}
		result *= a.size
		if result > ceiling {
			return ceiling
		}
	}
	return result
}

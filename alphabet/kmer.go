package alphabet

import "errors"

// ErrPopEmpty is returned by Kmer.PopBack when the kmer is already empty.
var ErrPopEmpty = errors.New("alphabet: PopBack on empty kmer")

// Kmer is a fixed-capacity rolling window of up to K symbols. It is a
// value type but carries a backing slice; callers that need an
// independent snapshot (the "copy" vs "live" distinction the Back-Track
// builder relies on) must call Clone explicitly rather than assign,
// since Go slice assignment shares the backing array.
type Kmer struct {
	alpha   Alphabet
	k       int
	symbols []Symbol // len() in [0, k], oldest first
}

// Empty returns a new, empty Kmer with capacity k over the given alphabet.
func Empty(a Alphabet, k int) Kmer {
	return Kmer{
		alpha:   a,
		k:       k,
		symbols: make([]Symbol, 0, k),
	}
}

// K returns the target window length.
func (km Kmer) K() int { return km.k }

// Size returns the number of symbols currently held, in [0, K()].
func (km Kmer) Size() int { return len(km.symbols) }

// IsComplete reports whether the window holds exactly K symbols.
func (km Kmer) IsComplete() bool { return len(km.symbols) == km.k }

// Symbols returns the current window contents, oldest first. The returned
// slice is owned by km; callers must not mutate it.
func (km Kmer) Symbols() []Symbol { return km.symbols }

// Clone returns an independent copy whose backing array is not shared
// with km, safe to mutate without affecting the original.
func (km Kmer) Clone() Kmer {
	cp := make([]Symbol, len(km.symbols), km.k)
	copy(cp, km.symbols)
	return Kmer{alpha: km.alpha, k: km.k, symbols: cp}
}

// PushBack appends s to the window. If the window is already at capacity
// K, the oldest symbol is evicted first. PushBack mutates km in place via
// pointer receiver; the Back-Track and Node-BFS builders roll one live
// window this way instead of allocating per step.
func (km *Kmer) PushBack(s Symbol) {
	if len(km.symbols) == km.k {
		copy(km.symbols, km.symbols[1:])
		km.symbols[km.k-1] = s
		return
	}
	km.symbols = append(km.symbols, s)
}

// PopBack removes the most recently pushed symbol. Returns ErrPopEmpty if
// the window is already empty. Only the Back-Track builder requires this.
func (km *Kmer) PopBack() error {
	if len(km.symbols) == 0 {
		return ErrPopEmpty
	}
	km.symbols = km.symbols[:len(km.symbols)-1]
	return nil
}

// Encode returns the unique dense integer in [0, Alphabet.Size()^Size())
// identifying the current window contents, via Horner's method. Encode
// is defined for incomplete windows too (Position-BFS emits short
// prefixes when its cut-early threshold trips), but most callers should
// gate on IsComplete first.
func (km Kmer) Encode() uint64 {
	var v uint64
	for _, s := range km.symbols {
		v = v*km.alpha.Size() + uint64(s)
	}
	return v
}

// Equal reports whether km and other hold the same symbols in the same
// order. Alphabets are not compared (only their effect on Encode matters
// to callers); two Kmers built over different alphabets but with equal
// Symbols() are considered equal.
func (km Kmer) Equal(other Kmer) bool {
	if len(km.symbols) != len(other.symbols) {
		return false
	}
	for i, s := range km.symbols {
		if other.symbols[i] != s {
			return false
		}
	}
	return true
}

// String renders the window as a compact sequence of symbol values,
// useful for test failure messages and debug logging.
func (km Kmer) String() string {
	out := make([]byte, 0, len(km.symbols)*2+2)
	out = append(out, '[')
	for i, s := range km.symbols {
		if i > 0 {
			out = append(out, ',')
		}
		out = appendUint(out, uint64(s))
	}
	out = append(out, ']')
	return string(out)
}

func appendUint(dst []byte, v uint64) []byte {
	if v == 0 {
		return append(dst, '0')
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return append(dst, buf[i:]...)
}

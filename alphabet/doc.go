// Package alphabet defines the finite symbol set underlying sequence graph
// segments, and a fixed-length rolling accumulator (Kmer) over that set.
//
// A Symbol is a small unsigned value in [0, Size). Size is fixed per
// Alphabet and never mutated after construction. Kmer is a sliding window
// of up to K symbols: PushBack appends a symbol and evicts the oldest once
// the window is full; PopBack removes the newest. A full window encodes to
// a unique integer in [0, Size^K).
//
// Complexity: PopBack is O(1); PushBack is O(1) amortized while the
// window is filling and O(K) once it is full (the window is shifted to
// evict the oldest symbol); Encode is O(K) (Horner's method over the
// current symbols).
package alphabet

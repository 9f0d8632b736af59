// Package lloc defines NodePos and LetterLoc, and a Compressor that maps
// between them. The builders treat the compressor as an opaque map from
// (node, offset) to a dense integer address; this package supplies the
// interface every builder consumes plus one concrete, total
// implementation (DenseCompressor) so the rest of this module is
// independently testable without a caller-supplied compressor.
package lloc

package complexity

import "errors"

// ErrInvalidDepth is returned by Estimate when k < 1.
var ErrInvalidDepth = errors.New("complexity: trie depth k must be at least 1")

package strsplit

import "errors"

// ErrNoSegment is the panic value of a splitter that ends without producing a single
// segment. Must never happen.
var ErrNoSegment = errors.New("splitter produced no segments")

// Until returns the part of the haystack before the first occurrence of ch, or the whole
// haystack if there is none. It never fails.
func Until(haystack string, ch rune) string {
	segment, ok := New(haystack, Char(ch)).Next()
	if !ok {
		panic(ErrNoSegment)
	}

	return segment
}

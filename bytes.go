package strsplit

import (
	"iter"

	"github.com/indigo-web/utils/uf"
)

// Bytes splits a byte slice in the same way Split does. Segments are slices of the haystack
// itself, therefore it must not be modified while iterating.
func Bytes(haystack []byte, delim Delimiter) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for segment := range Split(uf.B2S(haystack), delim) {
			if !yield(uf.S2B(segment)) {
				return
			}
		}
	}
}

package strsplit

import (
	"strings"
	"unicode/utf8"

	"github.com/indigo-web/utils/strcomp"
)

// Delimiter locates the leftmost delimiter occurrence in the haystack. The returned offsets
// are in bytes and must fall on character boundaries, where end points right after the
// delimiter. Implementations must be stateless, as the same delimiter is asked on every
// splitter advance.
type Delimiter interface {
	Find(haystack string) (start, end int, found bool)
}

var (
	_ Delimiter = Str("")
	_ Delimiter = Char(0)
	_ Delimiter = Fold("")
)

// Str matches a literal substring. An empty string never matches.
type Str string

// Find returns the leftmost occurrence of the substring.
func (s Str) Find(haystack string) (start, end int, found bool) {
	if len(s) == 0 {
		return 0, 0, false
	}

	start = strings.Index(haystack, string(s))
	if start == -1 {
		return 0, 0, false
	}

	return start, start + len(s), true
}

// Char matches a single character. utf8.RuneError matches invalid byte sequences as well,
// in the same way strings.IndexRune does. Invalid runes never match.
//
// As an invalid byte is consumed as the delimiter, joining segments back with the encoded
// utf8.RuneError reproduces the haystack only if it contained no invalid bytes. Otherwise,
// the bytes actually matched must be reinserted.
type Char rune

// Find returns the leftmost occurrence of the character and its encoded width.
func (c Char) Find(haystack string) (start, end int, found bool) {
	start = strings.IndexRune(haystack, rune(c))
	if start == -1 {
		return 0, 0, false
	}

	// the width is taken from the haystack instead of utf8.RuneLen, because RuneError
	// also stands for a single invalid byte
	_, width := utf8.DecodeRuneInString(haystack[start:])

	return start, start + width, true
}

// Fold matches a literal substring ignoring the ASCII case. Only ASCII letters are folded,
// every other byte (including those of multibyte characters) must match exactly. An empty
// string never matches.
type Fold string

// Find returns the leftmost occurrence of the substring starting and ending on character
// boundaries.
func (f Fold) Find(haystack string) (start, end int, found bool) {
	n := len(f)
	if n == 0 {
		return 0, 0, false
	}

	for i := 0; i+n <= len(haystack); i++ {
		if !utf8.RuneStart(haystack[i]) || (i+n < len(haystack) && !utf8.RuneStart(haystack[i+n])) {
			continue
		}

		if equalFold(haystack[i:i+n], string(f)) {
			return i, i + n, true
		}
	}

	return 0, 0, false
}

// equalFold reports whether a and b are equal with ASCII letters compared case-insensitively.
// strcomp.EqualFold is used as a cheap rejection only, as it folds any pair of bytes differing
// by 0x20 (e.g. '-' and '\r'), which is correct for letters only.
func equalFold(a, b string) bool {
	if !strcomp.EqualFold(a, b) {
		return false
	}

	for i := 0; i < len(a); i++ {
		if a[i] == b[i] {
			continue
		}

		if lower := a[i] | 0x20; lower < 'a' || lower > 'z' {
			return false
		}
	}

	return true
}

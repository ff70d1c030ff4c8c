package strsplit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytes(t *testing.T) {
	t.Run("segments", func(t *testing.T) {
		var segments []string
		for segment := range Bytes([]byte("GET /index.html HTTP/1.1"), Char(' ')) {
			segments = append(segments, string(segment))
		}

		require.Equal(t, []string{"GET", "/index.html", "HTTP/1.1"}, segments)
	})

	t.Run("no copy", func(t *testing.T) {
		haystack := []byte("key=value")
		var segments [][]byte
		for segment := range Bytes(haystack, Char('=')) {
			segments = append(segments, segment)
		}

		require.Len(t, segments, 2)
		require.Same(t, &haystack[0], &segments[0][0])
		require.Same(t, &haystack[4], &segments[1][0])
	})

	t.Run("empty", func(t *testing.T) {
		var n int
		for segment := range Bytes(nil, Str(",")) {
			require.Empty(t, segment)
			n++
		}

		require.Equal(t, 1, n)
	})

	t.Run("early break", func(t *testing.T) {
		var n int
		for range Bytes([]byte("a,b,c"), Str(",")) {
			n++
			break
		}

		require.Equal(t, 1, n)
	})
}

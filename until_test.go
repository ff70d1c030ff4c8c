package strsplit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUntil(t *testing.T) {
	require.Equal(t, "hello", Until("hello world", ' '))
	require.Equal(t, "hello", Until("hello", ' '))
	require.Equal(t, "", Until("", ' '))
	require.Equal(t, "", Until(" hello", ' '))
	require.Equal(t, "naïve", Until("naïve→world", '→'))
}

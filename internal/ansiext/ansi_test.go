package ansiext

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEscape(t *testing.T) {
	t.Parallel()

	require.Equal(t, "a␉b␊", Escape("a\tb\n"))
	require.Equal(t, "␡", Escape("\x7f"))
	require.Equal(t, "plain", Escape("plain"))
}

func TestLine(t *testing.T) {
	t.Parallel()

	require.Equal(t, "red", Line("\x1b[31mred\x1b[0m"))
	require.Equal(t, "two␊lines", Line("two\nlines"))
}

func TestBlock(t *testing.T) {
	t.Parallel()

	require.Equal(t, "one\n    two", Block("one\r\n\ttwo"))
	require.Equal(t, "bold\n", Block("\x1b[1mbold\x1b[0m\n"))
}

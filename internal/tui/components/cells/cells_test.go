package cells

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/listadapter/internal/highlight"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func plain(s string) string {
	return ansi.Strip(s)
}

func TestText(t *testing.T) {
	t.Parallel()

	c := NewText()
	c.SetTitle("Hello world")
	require.Equal(t, "Hello world", plain(c.Render(20)))
	require.Equal(t, "Hell…", plain(c.Render(5)))

	c.SetMuted(true)
	require.Equal(t, "Hello world", plain(c.Render(20)))
}

func TestDetail(t *testing.T) {
	t.Parallel()

	c := NewDetail()
	c.SetTitle("Title")
	require.Equal(t, "Title", plain(c.Render(7)))

	c.SetSubtitle("one two three")
	out := c.Render(7)
	require.Equal(t, "Title\none two\nthree", plain(out))
	require.Equal(t, 3, lipgloss.Height(out))
	require.Equal(t, 2, lipgloss.Height(c.Render(40)))
}

func TestCode(t *testing.T) {
	t.Parallel()

	cache := highlight.NewCache()
	c := NewCode(cache)()
	c.SetSnippet(highlight.Snippet{Source: "a := 1\nb := 2\n", Language: "go"})

	t.Run("plain while scrolling", func(t *testing.T) {
		require.False(t, c.Highlighted())
		require.Equal(t, "a := 1\nb := 2", plain(c.Render(20)))
		require.Equal(t, 0, cache.Len())
	})

	t.Run("highlights at rest", func(t *testing.T) {
		c.SetRich(true)
		require.True(t, c.Highlighted())
		require.Equal(t, "a := 1\nb := 2", plain(c.Render(20)))
		require.Equal(t, 1, cache.Len())
	})

	t.Run("cached output survives scrolling", func(t *testing.T) {
		c.SetRich(false)
		require.True(t, c.Highlighted())
	})

	t.Run("truncates", func(t *testing.T) {
		require.Equal(t, "a :\nb :", plain(c.Render(3)))
	})
}

func TestLines(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1, Lines("x"))
	require.Equal(t, 2, Lines("x\ny\n"))
	require.Equal(t, 3, Lines("x\n\ny"))
}

func TestNote(t *testing.T) {
	t.Parallel()

	c := NewNote()
	c.SetMarkdown("Some **bold** text")

	require.Equal(t, "Some **bold** text", plain(c.Render(40)))

	c.SetRich(true)
	out := plain(c.Render(40))
	require.Contains(t, out, "Some bold text")
	require.NotContains(t, out, "**")
	require.Equal(t, c.Render(40), c.Render(40))

	c.SetMarkdown("# Heading")
	require.Contains(t, plain(c.Render(40)), "Heading")
}

func TestSectionTitle(t *testing.T) {
	t.Parallel()

	c := NewSectionTitle("Fruits", 3)
	out := c.Render(20)
	require.Equal(t, "Fruits (3) "+strings.Repeat("─", 9), plain(out))
	require.Equal(t, 20, lipgloss.Width(out))

	require.Equal(t, "Veg", plain(NewSectionTitle("Veg", 0).Render(4)))
}

func TestBanner(t *testing.T) {
	t.Parallel()

	b := NewBanner("listadapter", "")
	out := b.Render(20)
	require.Equal(t, "listadapter "+strings.Repeat("╱", 8), plain(out))
	require.Equal(t, 1, lipgloss.Height(out))

	b.SetText("a b c d")
	out = b.Render(20)
	require.Equal(t, 2, lipgloss.Height(out))

	narrow := plain(b.Render(4))
	require.Equal(t, []string{"lis…", " a b", " c d"}, strings.Split(narrow, "\n"))

	require.False(t, b.Hidden())
	b.SetHidden(true)
	require.True(t, b.Hidden())
}

func TestControlCharacters(t *testing.T) {
	t.Parallel()

	c := NewText()
	c.SetTitle("\x1b[31mred\x1b[0m\tcell")
	require.Equal(t, "red␉cell", c.Title())

	d := NewDetail()
	d.SetSubtitle("one\n\x1b[2Jtwo")
	d.SetTitle("t")
	require.Equal(t, "t\none\ntwo", plain(d.Render(20)))
}

package cells

import (
	"strings"

	"github.com/charmbracelet/listadapter/internal/highlight"
	"github.com/charmbracelet/listadapter/internal/tui/styles"
)

// Code shows a source snippet. Highlighting is expensive, so it only
// happens when the row is filled outside of a scroll; until then the
// plain source is shown unless the cache already holds the colored
// version.
type Code struct {
	cache   *highlight.Cache
	snippet highlight.Snippet
	rich    bool
}

// NewCode returns a constructor for code rows sharing cache.
func NewCode(cache *highlight.Cache) func() *Code {
	return func() *Code {
		return &Code{cache: cache}
	}
}

func (c *Code) SetSnippet(snippet highlight.Snippet) {
	c.snippet = snippet
}

// SetRich allows Render to highlight on a cache miss.
func (c *Code) SetRich(rich bool) {
	c.rich = rich
}

func (c *Code) Snippet() highlight.Snippet {
	return c.snippet
}

// Highlighted reports whether Render shows colored source.
func (c *Code) Highlighted() bool {
	if c.rich {
		return true
	}
	_, ok := c.cache.Lookup(c.snippet)
	return ok
}

func (c *Code) Render(width int) string {
	body, ok := c.cache.Lookup(c.snippet)
	if !ok {
		if c.rich {
			body = c.cache.Highlight(c.snippet)
		} else {
			t := styles.CurrentTheme()
			body = renderLines(t.S().Code, strings.TrimRight(c.snippet.Source, "\n"))
		}
	}
	return truncateLines(trimBlankLines(body), width)
}

// Lines is the number of source lines, a good height estimate.
func Lines(source string) int {
	return strings.Count(strings.TrimRight(source, "\n"), "\n") + 1
}

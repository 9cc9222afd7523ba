package highlight

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/listadapter/internal/csync"
	"github.com/charmbracelet/listadapter/internal/tui/styles"
	"github.com/zeebo/xxh3"
)

// Snippet is a piece of source code and the language it is written in.
type Snippet struct {
	Source   string
	Language string
}

func (s Snippet) key() uint64 {
	h := xxh3.New()
	fmt.Fprintf(h, "%s-%s-", styles.CurrentTheme().Name, s.Language)
	h.Write([]byte(s.Source))
	return h.Sum64()
}

// Cache memoizes highlighted snippets. It is safe to warm from a background
// command while rows read from it on the update loop.
type Cache struct {
	entries *csync.Map[uint64, string]
}

func NewCache() *Cache {
	return &Cache{entries: csync.NewMap[uint64, string]()}
}

// Lookup returns the highlighted snippet if it was already rendered.
func (c *Cache) Lookup(s Snippet) (string, bool) {
	return c.entries.Get(s.key())
}

// Highlight returns the highlighted snippet, rendering it on a miss. Source
// that fails to tokenize is cached as is.
func (c *Cache) Highlight(s Snippet) string {
	return c.entries.GetOrSet(s.key(), func() string {
		out, err := SyntaxHighlight(s.Source, s.Language, styles.CurrentTheme().BgBase)
		if err != nil {
			slog.Debug("Failed to highlight snippet", "language", s.Language, "error", err)
			return s.Source
		}
		return out
	})
}

// Warm highlights every snippet not yet cached.
func (c *Cache) Warm(snippets []Snippet) int {
	var n int
	for _, s := range snippets {
		if _, ok := c.Lookup(s); ok {
			continue
		}
		c.Highlight(s)
		n++
	}
	return n
}

func (c *Cache) Len() int {
	return c.entries.Len()
}

// Reset drops every cached snippet, for instance after a theme change.
func (c *Cache) Reset() {
	c.entries.Reset()
}

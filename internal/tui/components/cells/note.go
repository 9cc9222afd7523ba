package cells

import (
	"log/slog"

	"github.com/charmbracelet/glamour/v2"
	"github.com/charmbracelet/listadapter/internal/tui/styles"
)

// Note renders markdown with glamour. While the list scrolls the raw text
// is wrapped instead, and the styled rendering is produced once the row is
// filled at rest.
type Note struct {
	markdown string
	rich     bool

	// last styled rendering, valid for cachedWidth and the current markdown
	cached      string
	cachedWidth int
}

func NewNote() *Note {
	return &Note{cachedWidth: -1}
}

func (c *Note) SetMarkdown(markdown string) {
	if markdown != c.markdown {
		c.cachedWidth = -1
	}
	c.markdown = markdown
}

func (c *Note) SetRich(rich bool) {
	c.rich = rich
}

func (c *Note) Markdown() string {
	return c.markdown
}

func (c *Note) Render(width int) string {
	if !c.rich {
		t := styles.CurrentTheme()
		return renderLines(t.S().Muted, wrap(c.markdown, width))
	}
	if c.cachedWidth == width {
		return c.cached
	}
	out, err := renderMarkdown(c.markdown, width)
	if err != nil {
		slog.Debug("Failed to render markdown", "error", err)
		return wrap(c.markdown, width)
	}
	c.cached, c.cachedWidth = out, width
	return out
}

func renderMarkdown(markdown string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.CurrentTheme().S().Markdown),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", err
	}
	return trimBlankLines(out), nil
}

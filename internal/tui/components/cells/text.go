package cells

import (
	"github.com/charmbracelet/listadapter/internal/ansiext"
	"github.com/charmbracelet/listadapter/internal/tui/styles"
	"github.com/charmbracelet/x/ansi"
)

// Text is a single line row.
type Text struct {
	title string
	muted bool
}

func NewText() *Text {
	return &Text{}
}

func (c *Text) SetTitle(title string) {
	c.title = ansiext.Line(title)
}

func (c *Text) Title() string {
	return c.title
}

func (c *Text) SetMuted(muted bool) {
	c.muted = muted
}

func (c *Text) Render(width int) string {
	t := styles.CurrentTheme()
	style := t.S().Text
	if c.muted {
		style = t.S().Muted
	}
	return style.Render(ansi.Truncate(c.title, width, ellipsis))
}

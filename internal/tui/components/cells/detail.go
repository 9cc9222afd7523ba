package cells

import (
	"github.com/charmbracelet/listadapter/internal/ansiext"
	"github.com/charmbracelet/listadapter/internal/tui/styles"
	"github.com/charmbracelet/x/ansi"
)

// Detail is a title line followed by a subtitle wrapped to the row width.
// Its height depends on the width, so it belongs in self-measured rows.
type Detail struct {
	title    string
	subtitle string
}

func NewDetail() *Detail {
	return &Detail{}
}

func (c *Detail) SetTitle(title string) {
	c.title = ansiext.Line(title)
}

func (c *Detail) SetSubtitle(subtitle string) {
	c.subtitle = ansiext.Block(subtitle)
}

func (c *Detail) Title() string {
	return c.title
}

func (c *Detail) Render(width int) string {
	t := styles.CurrentTheme()
	title := t.S().Subtitle.Render(ansi.Truncate(c.title, width, ellipsis))
	if c.subtitle == "" {
		return title
	}
	return title + "\n" + renderLines(t.S().Subtle, wrap(c.subtitle, width))
}

package cells

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/listadapter/internal/ansiext"
	"github.com/charmbracelet/listadapter/internal/tui/styles"
	"github.com/charmbracelet/x/ansi"
)

// SectionTitle is a section header: the title, an optional row count and
// a rule filling the rest of the line.
type SectionTitle struct {
	title string
	count int
}

func NewSectionTitle(title string, count int) *SectionTitle {
	return &SectionTitle{title: ansiext.Line(title), count: count}
}

func (c *SectionTitle) Title() string {
	return c.title
}

func (c *SectionTitle) Render(width int) string {
	t := styles.CurrentTheme()
	text := c.title
	if c.count > 0 {
		text = fmt.Sprintf("%s %s", text, t.S().Subtle.Render(fmt.Sprintf("(%d)", c.count)))
	}
	text = ansi.Truncate(t.S().SectionTitle.Render(text), width, ellipsis)
	remaining := width - lipgloss.Width(text) - 1
	if remaining > 0 {
		text += " " + t.S().SectionRule.Render(strings.Repeat("─", remaining))
	}
	return text
}

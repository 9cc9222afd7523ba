package cells

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/listadapter/internal/ansiext"
	"github.com/charmbracelet/listadapter/internal/tui/styles"
	"github.com/charmbracelet/x/ansi"
)

// Banner is the view placed above the first section. Its height follows
// the width because the text wraps, so it is measured again whenever the
// width changes.
type Banner struct {
	name   string
	text   string
	hidden bool
}

func NewBanner(name, text string) *Banner {
	return &Banner{name: name, text: ansiext.Block(text)}
}

func (b *Banner) SetText(text string) {
	b.text = ansiext.Block(text)
}

func (b *Banner) Text() string {
	return b.text
}

func (b *Banner) SetHidden(hidden bool) {
	b.hidden = hidden
}

func (b *Banner) Hidden() bool {
	return b.hidden
}

func (b *Banner) Render(width int) string {
	t := styles.CurrentTheme()
	title := t.S().Title.Render(ansi.Truncate(b.name, width, ellipsis))
	if remaining := width - lipgloss.Width(title) - 1; remaining > 0 {
		title += " " + styles.ApplyForegroundGrad(strings.Repeat("╱", remaining), t.Primary, t.Secondary)
	}
	if b.text == "" {
		return title
	}
	style := t.S().Banner
	body := wrap(b.text, width-style.GetHorizontalFrameSize())
	return title + "\n" + renderLines(style, body)
}

package ansiext

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Escape replaces control characters with their Unicode Control Picture
// representations to ensure they are displayed correctly in the UI.
func Escape(content string) string {
	var sb strings.Builder
	sb.Grow(len(content))
	for _, r := range content {
		switch {
		case r >= 0 && r <= 0x1f: // Control characters 0x00-0x1F
			sb.WriteRune('␀' + r)
		case r == ansi.DEL:
			sb.WriteRune('␡')
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Line prepares catalog text for a single terminal line. Escape sequences
// are dropped so they cannot restyle the list, then whatever control
// characters remain are made visible.
func Line(content string) string {
	return Escape(ansi.Strip(content))
}

// Block is Line for multi-line text: newlines survive, tabs become spaces.
func Block(content string) string {
	lines := strings.Split(strings.ReplaceAll(content, "\t", "    "), "\n")
	for i, l := range lines {
		lines[i] = Line(strings.TrimSuffix(l, "\r"))
	}
	return strings.Join(lines, "\n")
}

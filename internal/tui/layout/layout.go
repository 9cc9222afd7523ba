// Package layout holds the small interfaces shared by components that the
// app model sizes and routes input to.
package layout

import (
	tea "github.com/charmbracelet/bubbletea/v2"
)

type Sizeable interface {
	SetSize(width, height int) tea.Cmd
	GetSize() (int, int)
}

// Focusable components ignore keys and the mouse wheel while blurred.
type Focusable interface {
	Focus() tea.Cmd
	Blur() tea.Cmd
	IsFocused() bool
}

package tui

import (
	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/listadapter/internal/tui/list"
)

type KeyMap struct {
	Quit         key.Binding
	ToggleBanner key.Binding
	ExpandBanner key.Binding
	Reload       key.Binding

	list list.KeyMap
}

func DefaultKeyMap(listKeys list.KeyMap) KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ToggleBanner: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "banner"),
		),
		ExpandBanner: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "more"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		list: listKeys,
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.list.Down,
		k.list.Up,
		k.list.Select,
		k.ToggleBanner,
		k.ExpandBanner,
		k.Reload,
		k.Quit,
	}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return append(k.list.FullHelp(), []key.Binding{
		k.ToggleBanner,
		k.ExpandBanner,
		k.Reload,
		k.Quit,
	})
}

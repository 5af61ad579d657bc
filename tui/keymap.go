package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keymap struct {
	push, pop, reverse, clear, undo,
	showHelp, quit key.Binding
}

func newKeymap() *keymap {
	return &keymap{
		push: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "push"),
		),
		pop: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "pop"),
		),
		reverse: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reverse"),
		),
		clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear"),
		),
		undo: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("ctrl+z", "undo"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "help"),
		),
		quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c", "ctrl+d"),
			key.WithHelp("esc", "quit"),
		),
	}
}

func (k *keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.push, k.pop, k.undo, k.showHelp, k.quit}
}

func (k *keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.push, k.pop, k.reverse, k.clear},
		{k.undo, k.showHelp, k.quit},
	}
}

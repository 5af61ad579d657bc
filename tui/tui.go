// Package tui is an interactive terminal session for pushing, popping and reversing a stack.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures an interactive session.
type Options struct {
	// Values are pushed in order before the session starts.
	Values []string
}

// Run starts the session and blocks until the user quits.
func Run(options *Options) error {
	_, err := tea.NewProgram(newBubble(options), tea.WithAltScreen()).Run()
	return err
}

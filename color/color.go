// Package color holds the ANSI palette used by lifo's terminal output.
package color

import "github.com/charmbracelet/lipgloss"

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	Black  = New("8")

	HiRed    = New("9")
	HiPurple = New("13")
	HiCyan   = New("14")
	Light    = New("230")
)

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lifo-cli/lifo/color"
	"github.com/lifo-cli/lifo/icon"
	"github.com/lifo-cli/lifo/style"
	"github.com/lifo-cli/lifo/util"
	"github.com/muesli/reflow/truncate"
)

var (
	paddingStyle = lipgloss.NewStyle().Padding(1, 2)
	titleStyle   = style.Tag(color.Light, color.Purple)
)

func (b *bubble) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle("lifo"))
	sb.WriteString(" ")
	sb.WriteString(style.Faint(util.Quantify(b.stack.Len(), "value", "values")))
	sb.WriteString("\n\n")
	sb.WriteString(b.inputC.View())
	sb.WriteString("\n\n")
	sb.WriteString(b.viewStack())

	if status, ok := b.status.Get(); ok {
		sb.WriteString("\n")
		sb.WriteString(style.Fg(color.Yellow)(status))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(b.helpC.View(b.keymap))

	return paddingStyle.Render(sb.String())
}

// viewStack lists the stack top first, drawing from a clone.
func (b *bubble) viewStack() string {
	if b.stack.IsEmpty() {
		return style.Faint(icon.Get(icon.Empty) + " empty")
	}

	width := b.width - 8
	if width < 8 {
		width = 80
	}

	var lines []string
	c := b.stack.Clone()
	for {
		v, ok := c.Pop().Get()
		if !ok {
			break
		}
		v = truncate.StringWithTail(v, uint(width), "…")
		if len(lines) == 0 {
			lines = append(lines, style.Top(icon.Get(icon.Top)+" "+v))
			continue
		}
		lines = append(lines, "  "+v)
	}

	return strings.Join(lines, "\n")
}

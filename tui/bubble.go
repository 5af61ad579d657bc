package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lifo-cli/lifo/log"
	"github.com/lifo-cli/lifo/stack"
	"github.com/samber/mo"
)

type bubble struct {
	stack *stack.Stack[string]
	// history holds a clone of the stack taken before every change.
	history *stack.Stack[*stack.Stack[string]]

	keymap *keymap
	inputC textinput.Model
	helpC  help.Model

	status mo.Option[string]
	width  int
}

func newBubble(options *Options) *bubble {
	input := textinput.New()
	input.Placeholder = "value to push"
	input.Prompt = "push › "
	input.Focus()

	return &bubble{
		stack:   stack.Of(options.Values...),
		history: stack.New[*stack.Stack[string]](),
		keymap:  newKeymap(),
		inputC:  input,
		helpC:   help.New(),
		status:  mo.None[string](),
	}
}

func (b *bubble) Init() tea.Cmd {
	return textinput.Blink
}

// change records the current stack for undo and then applies f to it.
func (b *bubble) change(f func(*stack.Stack[string])) {
	b.history.Push(b.stack.Clone())
	f(b.stack)
}

func (b *bubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.helpC.Width = msg.Width
		return b, nil
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.showHelp):
			b.helpC.ShowAll = !b.helpC.ShowAll
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.push):
			value := b.inputC.Value()
			if value == "" {
				b.status = mo.Some("nothing to push")
				return b, nil
			}
			b.change(func(s *stack.Stack[string]) { s.Push(value) })
			b.inputC.Reset()
			b.status = mo.Some(fmt.Sprintf("pushed %q", value))
			log.Debugf("tui: pushed %q", value)
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.pop):
			if b.stack.IsEmpty() {
				b.status = mo.Some("stack is empty")
				return b, nil
			}
			var popped string
			b.change(func(s *stack.Stack[string]) { popped = s.Pop().MustGet() })
			b.status = mo.Some(fmt.Sprintf("popped %q", popped))
			log.Debugf("tui: popped %q", popped)
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.reverse):
			b.history.Push(b.stack)
			b.stack = stack.Reverse(b.stack)
			b.status = mo.Some("reversed")
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.clear):
			b.change(func(s *stack.Stack[string]) { s.Clear() })
			b.status = mo.Some("cleared")
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.undo):
			previous, ok := b.history.Pop().Get()
			if !ok {
				b.status = mo.Some("nothing to undo")
				return b, nil
			}
			b.stack = previous
			b.status = mo.Some("undone")
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)
	return b, cmd
}

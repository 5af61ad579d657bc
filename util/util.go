// Package util holds small helpers shared by the lifo commands.
package util

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lifo-cli/lifo/filesystem"
	"golang.org/x/term"
)

// ErrNoInput is returned by Values when no source of values is available.
var ErrNoInput = errors.New("no values given: pass them as arguments, with --file, or on stdin")

// Quantify returns a pluralized count.
func Quantify(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// StdinPiped reports whether stdin is redirected rather than attached to a terminal.
func StdinPiped() bool {
	return !term.IsTerminal(int(os.Stdin.Fd()))
}

// Input describes where a command reads its values from.
type Input struct {
	Args  []string
	File  string
	Stdin io.Reader
}

// Values resolves the values of in, in bottom-to-top push order.
// Arguments win over File, which wins over Stdin. A nil Stdin is ignored.
func Values(in Input) ([]string, error) {
	switch {
	case len(in.Args) > 0:
		return in.Args, nil
	case in.File != "":
		return filesystem.ReadLines(in.File)
	case in.Stdin != nil:
		values, err := filesystem.ScanLines(in.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return values, nil
	default:
		return nil, ErrNoInput
	}
}

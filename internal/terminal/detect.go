// Package terminal reports whether the process is attached to a terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

var isTerminal = term.IsTerminal

// IsInteractive reports whether stdin and stdout are both terminals.
// The interactive version picker needs both: keys come from stdin and the form renders to stdout's TTY.
func IsInteractive() bool {
	return isTerminal(int(os.Stdin.Fd())) && isTerminal(int(os.Stdout.Fd()))
}

package output

import (
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether stdout is attached to a terminal.
// Non-TTY output (pipes, CI) skips spinners and interactive chrome.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

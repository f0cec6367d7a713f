package ptyio

import (
	"os"

	"golang.org/x/term"
)

// ControllingSize returns the column/row size of the process's own
// controlling terminal, falling back to (80, 24) if stdin is not a
// terminal (piped input, CI, a non-interactive invocation).
func ControllingSize() (cols, rows uint16) {
	w, h, err := term.GetSize(int(os.Stdin.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return uint16(w), uint16(h)
}

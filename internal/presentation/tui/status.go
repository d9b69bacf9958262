package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Success prints a green check line to w. Colors are dropped when w is not a terminal.
func Success(w io.Writer, format string, args ...any) {
	status(w, "✔", "#22c55e", format, args...)
}

// Warn prints a yellow warning line to w.
func Warn(w io.Writer, format string, args ...any) {
	status(w, "!", "#eab308", format, args...)
}

// Failure prints a red cross line to w.
func Failure(w io.Writer, format string, args ...any) {
	status(w, "✘", "#ef4444", format, args...)
}

func status(w io.Writer, mark, color, format string, args ...any) {
	out := termenv.NewOutput(w)
	styled := out.String(mark).Foreground(out.Color(color)).Bold()
	fmt.Fprintf(w, "%s %s\n", styled, fmt.Sprintf(format, args...))
}

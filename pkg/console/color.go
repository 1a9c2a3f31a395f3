// Package console holds the terminal side of the CLI: colored text, the
// logger and screen clearing.
package console

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mitchellh/colorstring"
)

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Colorize returns a colorizer for w that strips color codes when w is not a
// terminal.
func Colorize(w io.Writer) *colorstring.Colorize {
	return &colorstring.Colorize{
		Colors:  colorstring.DefaultColors,
		Disable: !IsTerminal(w),
		Reset:   true,
	}
}

// Red writes s in red followed by a newline.
func Red(w io.Writer, s string) {
	io.WriteString(w, Colorize(w).Color("[red]"+s)+"\n")
}

// Yellow writes s in yellow followed by a newline.
func Yellow(w io.Writer, s string) {
	io.WriteString(w, Colorize(w).Color("[yellow]"+s)+"\n")
}

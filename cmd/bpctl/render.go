// File: render.go
// Role: Terminal-width-aware rendering of a canonicalization result.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/butlerportugal/tensor"
	"golang.org/x/term"
)

const (
	defaultWidth = 80
	labelWidth   = 11
)

// render prints original alongside its canonical form, with a rule sized
// to the output terminal's width when stdout is a TTY (falling back to
// defaultWidth otherwise, e.g. when piped to a file).
func render(w io.Writer, original, canonical *tensor.Tensor) {
	width := terminalWidth()
	rule := strings.Repeat("-", width)

	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%-*s%s\n", labelWidth, "input:", original.String())
	fmt.Fprintf(w, "%-*s%s\n", labelWidth, "canonical:", canonical.String())
	if original.Coefficient() != 0 && canonical.Coefficient() == 0 {
		fmt.Fprintf(w, "%-*s%s\n", labelWidth, "note:", "sign collapse detected — tensor is identically zero")
	}
	fmt.Fprintln(w, rule)
}

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

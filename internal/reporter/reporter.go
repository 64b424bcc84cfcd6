package reporter

import (
	"fmt"
	"io"
	"os"
)

// NoColor disables ANSI color output.
var NoColor = false

// out is swapped in tests to capture the status lines.
var out io.Writer = os.Stderr

const (
	green  = "\033[32m"
	yellow = "\033[33m"
	red    = "\033[31m"
	reset  = "\033[0m"
)

func c(s string) string {
	if NoColor {
		return ""
	}
	return s
}

// Ok prints a green check message.
func Ok(msg string) {
	fmt.Fprintf(out, "  %s✓%s %s\n", c(green), c(reset), msg)
}

// Info prints an info line.
func Info(msg string) {
	fmt.Fprintln(out, msg)
}

// Warn prints a yellow warning.
func Warn(msg string) {
	fmt.Fprintf(out, "  %s⚠%s %s\n", c(yellow), c(reset), msg)
}

// Err prints a red error.
func Err(msg string) {
	fmt.Fprintf(out, "  %s✗%s %s\n", c(red), c(reset), msg)
}

// Package output provides terminal output formatting utilities for the
// scanpda CLI. It has minimal dependencies to avoid import cycles.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// TerminalWidth returns the terminal width, defaulting to 80 if unavailable.
func TerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// IsTTY reports whether stdout is an interactive terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// PrintHeader prints a bold section header.
func PrintHeader(w io.Writer, title string) {
	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintf(w, "%s\n", bold(title))
}

// Verdict renders the accept/reject outcome of a single analysis.
func Verdict(accepted bool) string {
	if accepted {
		green := color.New(color.FgGreen, color.Bold).SprintFunc()
		return green("complete verification")
	}
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	return red("incomplete verification")
}

// PrintMetric prints an aligned label/value metric line.
func PrintMetric(w io.Writer, label string, value interface{}) {
	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Fprintf(w, "  %-18s %v\n", cyan(label+":"), value)
}

// PrintScanpath prints the analyzed scanpath in dim styling.
func PrintScanpath(w io.Writer, scanpath string) {
	dim := color.New(color.Faint).SprintFunc()
	fmt.Fprintf(w, "  %s\n", dim(scanpath))
}

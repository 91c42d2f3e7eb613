// Package text measures and shapes strings for terminal output.
package text

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const ellipsis = "..."

// DisplayWidth is the number of terminal cells s occupies. ANSI sequences take none.
func DisplayWidth(s string) int {
	return lipgloss.Width(s)
}

// Truncate shortens s to width cells. An ellipsis marks the cut unless the column is
// too narrow to leave at least two cells of the value visible.
func Truncate(width int, s string) string {
	if DisplayWidth(s) <= width {
		return s
	}
	tail := ellipsis
	if width < len(ellipsis)+2 {
		tail = ""
	}
	out := truncate.StringWithTail(s, uint(max(width, 0)), tail) //nolint:gosec
	// wide runes can leave one cell unused
	return PadRight(width, out)
}

// PadRight fills s with spaces up to width cells.
func PadRight(width int, s string) string {
	if gap := width - DisplayWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// Pluralize prefixes noun with n and appends an "s" unless n is one.
func Pluralize(n int, noun string) string {
	if n != 1 {
		noun += "s"
	}
	return fmt.Sprintf("%d %s", n, noun)
}

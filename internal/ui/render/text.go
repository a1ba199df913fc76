// Package render provides text fitting helpers for TUI rows.
package render

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// Sanitize drops control characters and invalid UTF-8 from names read off
// disk or tags, and turns non-breaking spaces into plain ones.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	s = strings.ToValidUTF8(s, "")
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\u00a0':
			return ' '
		case r != '\t' && unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
}

func needsSanitize(s string) bool {
	for i := range len(s) {
		if b := s[i]; (b < 0x20 && b != '\t') || b >= 0x7f {
			return true
		}
	}
	return false
}

// Fit sanitizes s, shortens it to width cells with an ellipsis and pads
// it with spaces to exactly width cells. Wide characters count double.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(Sanitize(s), width, ellipsis), width)
}

// Truncate shortens styled text to width cells, keeping its escape codes.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, ellipsis)
}

// Row places left and right at the two ends of a width-cell line. Left is
// shortened when both do not fit.
func Row(left, right string, width int) string {
	rightWidth := lipgloss.Width(right)
	if lipgloss.Width(left)+rightWidth+1 > width {
		left = Truncate(left, max(width-rightWidth-1, 0))
	}
	gap := max(width-lipgloss.Width(left)-rightWidth, 1)
	return left + strings.Repeat(" ", gap) + right
}

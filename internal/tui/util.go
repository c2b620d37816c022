package tui

import "strings"

// overlay writes text into line starting at column col,
// clamped so the text stays inside the line.
func overlay(line []rune, col int, text string) {
	t := []rune(text)
	if len(t) > len(line) {
		t = t[:len(line)]
	}
	col = max(0, min(col, len(line)-len(t)))
	copy(line[col:], t)
}

func blank(w int) []rune {
	return []rune(strings.Repeat(" ", max(0, w)))
}

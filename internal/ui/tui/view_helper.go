package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderHitDetails(h Hit, text string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Source: %s\n", h.Source)
	fmt.Fprintf(&b, "Line:   %d\n", h.LineNumber)
	fmt.Fprintf(&b, "Length: %d bytes\n\n", len(h.Text))
	if text == "" {
		text = "(empty line)"
	}
	b.WriteString(text)
	b.WriteString("\n")
	return b.String()
}

// Package format holds small pure text helpers shared by the bot's message
// builders.
package format

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Width returns the display width of s in runes. Prices and product names
// carry multi-byte runes (€, emoji), so byte length would misalign tables.
func Width(s string) int {
	return utf8.RuneCountInString(s)
}

// PadRight pads s with spaces to the given rune width.
func PadRight(s string, width int) string {
	if pad := width - Width(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

// Truncate truncates a string to max runes.
func Truncate(s string, max int) string {
	if Width(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-1]) + "~"
}

// Stars renders a 1–5 rating as filled stars.
func Stars(n int) string {
	if n < 1 {
		n = 1
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("⭐", n)
}

// FormatDuration formats a duration readably.
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		if s > 0 {
			return fmt.Sprintf("%dm%ds", m, s)
		}
		return fmt.Sprintf("%dm", m)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}

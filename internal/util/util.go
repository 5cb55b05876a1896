package util

import (
	"strings"
	"unicode"
)

// Sanitize strips terminal escape sequences and control characters from s.
// Project fields come from an external data file and are treated as
// untrusted for display purposes: a stray CSI or OSC sequence in a title
// must not restyle or corrupt the screen.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == 0x1b { // ESC introduces CSI/OSC sequences
			i = skipEscape(runes, i)
			continue
		}
		if r == '\n' || r == '\t' {
			b.WriteRune(' ')
			continue
		}
		if unicode.IsControl(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// skipEscape returns the index of the last rune of the escape sequence
// starting at i, so the caller's loop increment moves past it.
func skipEscape(runes []rune, i int) int {
	if i+1 >= len(runes) {
		return i
	}
	switch runes[i+1] {
	case '[': // CSI: parameters then a final byte in 0x40-0x7e
		j := i + 2
		for j < len(runes) && (runes[j] < 0x40 || runes[j] > 0x7e) {
			j++
		}
		return j
	case ']': // OSC: terminated by BEL or ST
		j := i + 2
		for j < len(runes) {
			if runes[j] == 0x07 {
				return j
			}
			if runes[j] == 0x1b && j+1 < len(runes) && runes[j+1] == '\\' {
				return j + 1
			}
			j++
		}
		return j - 1
	default:
		return i + 1
	}
}

// Truncate shortens s to at most max runes, appending an ellipsis when it
// had to cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}

// JoinTags renders a stack tag list for display.
func JoinTags(tags []string) string {
	clean := make([]string, 0, len(tags))
	for _, t := range tags {
		clean = append(clean, Sanitize(t))
	}
	return strings.Join(clean, " · ")
}

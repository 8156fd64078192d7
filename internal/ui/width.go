package ui

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/ansi"
)

// emojiStart is where most pictographic emoji begin. Runes from here on are
// drawn two columns wide even when the width tables say otherwise.
const emojiStart = 0x1F300

// DisplayWidth returns the number of terminal columns s occupies.
// Escape sequences are skipped, wide and emoji runes count as two.
func DisplayWidth(s string) int {
	width := 0
	inEscape := false
	for _, r := range s {
		if r == ansi.Marker {
			inEscape = true
			continue
		}
		if inEscape {
			if ansi.IsTerminator(r) {
				inEscape = false
			}
			continue
		}
		width += RuneDisplayWidth(r)
	}
	return width
}

// RuneDisplayWidth returns the column width of a single rune.
func RuneDisplayWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w < 2 && r >= emojiStart {
		return 2
	}
	return w
}

// SafeDisplayWidth is DisplayWidth with a fallback to the rune count when the
// width comes out as zero for non-empty text.
func SafeDisplayWidth(s string) int {
	if w := DisplayWidth(s); w > 0 {
		return w
	}
	return utf8.RuneCountInString(s)
}

// StripANSI removes escape sequences from s.
func StripANSI(s string) string {
	var sb strings.Builder
	inEscape := false
	for _, r := range s {
		if r == ansi.Marker {
			inEscape = true
			continue
		}
		if inEscape {
			if ansi.IsTerminator(r) {
				inEscape = false
			}
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Package textfmt provides the string helpers used when rendering
// inspection reports: truncation, single tag stripping, value rendering and
// column padding.
package textfmt

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Unbounded disables truncation when used as a character bound.
const Unbounded = -1

// Truncate trims s to at most maxChars characters. When characters are
// dropped a marker of the form " ... <1st N shown, K suppressed>" is
// appended. A negative bound leaves s unchanged.
func Truncate(s string, maxChars int) string {
	if maxChars < 0 {
		return s
	}
	length := utf8.RuneCountInString(s)
	if length <= maxChars {
		return s
	}
	runes := []rune(s)
	return fmt.Sprintf("%s ... <1st %d shown, %d suppressed>",
		string(runes[:maxChars]), maxChars, length-maxChars)
}

// StripSingleTag removes a leading '<' and trailing '>' from text that looks
// like a single markup tag, so that values such as "<nil>" are not mistaken
// for markup. Text containing any other '<' is returned unchanged.
func StripSingleTag(text string) string {
	if len(text) < 2 || !strings.HasPrefix(text, "<") || !strings.HasSuffix(text, ">") {
		return text
	}
	inner := text[1 : len(text)-1]
	if strings.Contains(inner, "<") {
		return text
	}
	return inner
}

// PadRight pads s with spaces to the given display width. Wide characters
// count for two columns. Strings wider than width are returned unchanged.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Rule returns a horizontal separator of n copies of ch.
func Rule(ch string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(ch, n)
}

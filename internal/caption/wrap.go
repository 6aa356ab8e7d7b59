package caption

import (
	"strings"
	"unicode/utf8"
)

// WrapLines greedily fills lines up to maxChars runes, breaking only at word
// boundaries. A single word longer than the limit occupies its own line
// unbroken. Words are joined with single spaces.
func WrapLines(words []string, maxChars int) []string {
	var lines []string
	var current strings.Builder
	currentWidth := 0

	for _, word := range words {
		width := utf8.RuneCountInString(word)
		switch {
		case currentWidth == 0:
			current.WriteString(word)
			currentWidth = width
		case currentWidth+1+width <= maxChars:
			current.WriteByte(' ')
			current.WriteString(word)
			currentWidth += 1 + width
		default:
			lines = append(lines, current.String())
			current.Reset()
			current.WriteString(word)
			currentWidth = width
		}
	}
	if currentWidth > 0 {
		lines = append(lines, current.String())
	}
	return lines
}

// wrappedLineCount returns how many lines the words occupy at the given
// width without building the line strings.
func wrappedLineCount(words []string, maxChars int) int {
	lines := 0
	currentWidth := 0
	for _, word := range words {
		width := utf8.RuneCountInString(word)
		switch {
		case currentWidth == 0:
			lines++
			currentWidth = width
		case currentWidth+1+width <= maxChars:
			currentWidth += 1 + width
		default:
			lines++
			currentWidth = width
		}
	}
	return lines
}

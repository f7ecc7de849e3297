// Package textutils provides text cleaning helpers for statement content.
package textutils

import (
	"regexp"
	"strings"
)

var (
	// Characters allowed in cleaned text: word characters, whitespace, common
	// punctuation, currency glyphs and the accented Latin letters used in
	// Spanish statements. Everything else becomes a space.
	disallowedRe = regexp.MustCompile(`[^\w\s\-.,/()áéíóúüñÁÉÍÓÚÜÑ€$£¥]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	spaceTabRe   = regexp.MustCompile(`[ \t]+`)
	blankLinesRe = regexp.MustCompile(`\n{2,}`)
	multiSpaceRe = regexp.MustCompile(` {2,}`)
)

// CleanText collapses all whitespace runs to single spaces, filters the
// character set and trims the edges. Empty input yields empty output.
// CleanText is idempotent.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
	text = disallowedRe.ReplaceAllString(text, " ")
	text = multiSpaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// CleanTextPreservingLines filters the same character set but keeps line
// breaks so callers can still split the text into statement lines.
func CleanTextPreservingLines(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = disallowedRe.ReplaceAllString(text, " ")
	text = spaceTabRe.ReplaceAllString(text, " ")
	text = blankLinesRe.ReplaceAllString(text, "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

package ingestion

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	excessBlankLines = regexp.MustCompile(`\n{3,}`)
	innerSpaces      = regexp.MustCompile(`[ \t\f\v\x{00a0}]+`)
)

// bulletPrefixes are list markers emitted by PDF and DOCX extraction that
// are rewritten to "- ".
var bulletPrefixes = []string{"• ", "· ", "▪ ", "◦ ", "● ", "– "}

// CleanText normalizes extracted document text while preserving its line
// structure: line endings become LF, control characters are dropped, runs
// of spaces collapse, bullet glyphs become "- " and at most one blank line
// separates blocks.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = stripControl(content)

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	result := excessBlankLines.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine collapses inner whitespace, keeping leading indentation
func cleanLine(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	if strings.TrimSpace(trimmed) == "" {
		return ""
	}
	indent := len(line) - len(trimmed)

	content := innerSpaces.ReplaceAllString(strings.TrimSpace(trimmed), " ")
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(content, prefix) {
			content = "- " + strings.TrimPrefix(content, prefix)
			break
		}
	}
	return strings.Repeat(" ", indent) + content
}

// stripControl removes control characters other than newline and tab
func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) || r == unicode.ReplacementChar {
			return -1
		}
		return r
	}, s)
}

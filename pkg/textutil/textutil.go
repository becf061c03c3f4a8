// Package textutil formats the free-form help text of a command.
package textutil

import (
	"strings"
	"unicode"
)

// TrimNewlines removes leading and trailing newlines, leaving other whitespace alone.
func TrimNewlines(s string) string {
	return strings.Trim(s, "\r\n")
}

// StripIndent removes the indentation shared by all non-blank lines.
func StripIndent(s string) string {
	lines := strings.Split(s, "\n")
	shared := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := len(line) - len(strings.TrimLeftFunc(line, isIndent))
		if shared < 0 || n < shared {
			shared = n
		}
	}
	if shared <= 0 {
		return s
	}
	for i, line := range lines {
		if len(line) >= shared {
			lines[i] = line[shared:]
		} else {
			lines[i] = strings.TrimLeftFunc(line, isIndent)
		}
	}
	return strings.Join(lines, "\n")
}

// Indent prefixes every non-blank line with n spaces.
func Indent(s string, n int) string {
	if n <= 0 {
		return s
	}
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}

// Redent strips the shared indentation of s and indents it again by n spaces.
func Redent(s string, n int) string {
	return Indent(StripIndent(s), n)
}

// Wrap breaks text into lines of at most width bytes, splitting on whitespace. A word longer than
// width is kept whole on its own line.
func Wrap(text string, width int) []string {
	var (
		lines []string
		line  strings.Builder
	)
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

func isIndent(r rune) bool {
	return r == ' ' || r == '\t' || (r != '\n' && unicode.IsSpace(r))
}

package cliparse

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Camelize converts a flag name into its camelCase form: "foo-bar" becomes "fooBar" and
// "--foo-bar-baz" becomes "fooBarBaz". Hyphens, underscores, dots and spaces separate words.
// Existing humps are kept, so "camelCaseOption" is returned unchanged and "FOOBar" becomes
// "fooBar".
func Camelize(s string) string {
	var b strings.Builder
	first := true
	for _, field := range strings.FieldsFunc(s, isWordSeparator) {
		for _, word := range splitHumps(field) {
			word = strings.ToLower(word)
			if !first {
				r, size := utf8.DecodeRuneInString(word)
				b.WriteRune(unicode.ToUpper(r))
				word = word[size:]
			}
			b.WriteString(word)
			first = false
		}
	}
	return b.String()
}

// Decamelize converts a camelCase name into its hyphenated command-line form: "camelCaseOption"
// becomes "camel-case-option". Existing separators are left alone.
func Decamelize(s string) string {
	var b strings.Builder
	for i, field := range splitFieldsKeepSeparators(s) {
		if i%2 == 1 {
			// separator run
			b.WriteString(field)
			continue
		}
		b.WriteString(strings.ToLower(strings.Join(splitHumps(field), "-")))
	}
	return b.String()
}

// resultKey is the key a flag name occupies in the result. Single-character names are kept
// verbatim so that -F and -f stay distinct.
func resultKey(name string) string {
	if utf8.RuneCountInString(name) == 1 {
		return name
	}
	return Camelize(name)
}

// cliName is the hyphenated command-line form of a flag name. Single-character names are kept
// verbatim.
func cliName(name string) string {
	if utf8.RuneCountInString(name) == 1 {
		return name
	}
	return Decamelize(name)
}

func isWordSeparator(r rune) bool {
	return r == '-' || r == '_' || r == '.' || r == ' '
}

// splitHumps splits a word at camelCase boundaries: before an upper-case letter that follows a
// lower-case letter or digit, and before the last letter of an upper-case run that is followed by
// a lower-case letter ("FOOBar" splits into "FOO" and "Bar").
func splitHumps(word string) []string {
	runes := []rune(word)
	var parts []string
	start := 0
	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		if !unicode.IsUpper(cur) {
			continue
		}
		boundary := unicode.IsLower(prev) || unicode.IsDigit(prev)
		if !boundary && unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
			boundary = true
		}
		if boundary {
			parts = append(parts, string(runes[start:i]))
			start = i
		}
	}
	return append(parts, string(runes[start:]))
}

// splitFieldsKeepSeparators splits s into alternating word and separator runs, always starting
// with a (possibly empty) word.
func splitFieldsKeepSeparators(s string) []string {
	parts := []string{""}
	inSep := false
	for _, r := range s {
		if isWordSeparator(r) != inSep {
			inSep = !inSep
			parts = append(parts, "")
		}
		parts[len(parts)-1] += string(r)
	}
	return parts
}

package utils

import (
	"strings"
	"unicode/utf8"
)

// CleanToValidUTF8 strips invalid UTF-8 sequences and NUL bytes so the text
// can be stored in a Postgres text column.
func CleanToValidUTF8(s string) string {
	if utf8.ValidString(s) {
		return strings.ReplaceAll(s, "\x00", "")
	}
	cleaned := strings.ToValidUTF8(s, "")
	return strings.ReplaceAll(cleaned, "\x00", "")
}

// SafeText normalizes whitespace in extracted article text.
func SafeText(s string) string {
	s = CleanToValidUTF8(s)
	return strings.Join(strings.Fields(s), " ")
}

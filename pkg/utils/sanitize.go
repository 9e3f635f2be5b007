package utils

import (
	"strings"
	"unicode/utf8"
)

// EscapeSQLWildcards escapes SQL LIKE wildcard characters so user input
// used in LIKE queries cannot inject patterns
func EscapeSQLWildcards(input string) string {
	// Escape backslash first (as it's the escape character)
	input = strings.ReplaceAll(input, "\\", "\\\\")
	input = strings.ReplaceAll(input, "%", "\\%")
	input = strings.ReplaceAll(input, "_", "\\_")
	return input
}

// SanitizeSearchQuery prepares a search string for safe LIKE usage.
// Returns the sanitized term wrapped with % for partial matching.
func SanitizeSearchQuery(input string) string {
	input = strings.TrimSpace(input)
	// Limit length to prevent DoS
	input = TruncateString(input, 100)
	input = EscapeSQLWildcards(input)
	return "%" + input + "%"
}

// TruncateString truncates a string to at most maxLen characters without
// splitting a multibyte sequence
func TruncateString(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	return string([]rune(s)[:maxLen])
}

package utils

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestEscapeSQLWildcards(t *testing.T) {
	assert.Equal(t, "100\\%", EscapeSQLWildcards("100%"))
	assert.Equal(t, "a\\_b", EscapeSQLWildcards("a_b"))
	assert.Equal(t, "c:\\\\temp", EscapeSQLWildcards("c:\\temp"))
	assert.Equal(t, "plain", EscapeSQLWildcards("plain"))
}

func TestSanitizeSearchQuery(t *testing.T) {
	assert.Equal(t, "%jane%", SanitizeSearchQuery("  jane  "))
	assert.Equal(t, "%50\\% off%", SanitizeSearchQuery("50% off"))
}

func TestSanitizeSearchQueryTruncatesOnRuneBoundary(t *testing.T) {
	// 150 two-byte runes; truncation must not split one in half
	long := strings.Repeat("é", 150)
	out := SanitizeSearchQuery(long)

	assert.True(t, utf8.ValidString(out))
	assert.Equal(t, "%"+strings.Repeat("é", 100)+"%", out)
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "abc", TruncateString("abcdef", 3))

	out := TruncateString(strings.Repeat("日", 5), 3)
	assert.Equal(t, strings.Repeat("日", 3), out)
	assert.True(t, utf8.ValidString(out))
}

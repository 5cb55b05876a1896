package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeStripsCSISequences(t *testing.T) {
	assert.Equal(t, "dangerous title", Sanitize("\x1b[31mdangerous\x1b[0m title"))
}

func TestSanitizeStripsOSCSequences(t *testing.T) {
	assert.Equal(t, "name", Sanitize("\x1b]0;evil\x07name"))
	assert.Equal(t, "name", Sanitize("\x1b]8;;http://x\x1b\\name"))
}

func TestSanitizeStripsControlCharacters(t *testing.T) {
	assert.Equal(t, "ab", Sanitize("a\x00\x08b"))
}

func TestSanitizeFlattensWhitespace(t *testing.T) {
	assert.Equal(t, "two lines", Sanitize("two\nlines"))
	assert.Equal(t, "a b", Sanitize("a\tb"))
}

func TestSanitizeKeepsPlainText(t *testing.T) {
	assert.Equal(t, "Habit Tracker 2.0 — now with émoji 🎉", Sanitize("Habit Tracker 2.0 — now with émoji 🎉"))
}

func TestSanitizeTruncatedEscapeAtEnd(t *testing.T) {
	assert.Equal(t, "abc", Sanitize("abc\x1b"))
	assert.Equal(t, "abc", Sanitize("abc\x1b["))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exact", Truncate("exact", 5))
	assert.Equal(t, "long…", Truncate("longer text", 5))
	assert.Equal(t, "a", Truncate("abc", 1))
}

func TestJoinTags(t *testing.T) {
	assert.Equal(t, "Go · React", JoinTags([]string{"Go", "React"}))
	assert.Equal(t, "Go", JoinTags([]string{"\x1b[1mGo\x1b[0m"}))
	assert.Equal(t, "", JoinTags(nil))
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanToValidUTF8(t *testing.T) {
	assert.Equal(t, "FCA update", CleanToValidUTF8("FCA update"))
	assert.Equal(t, "broken", CleanToValidUTF8("bro\x00ken"))
	assert.Equal(t, "abc", CleanToValidUTF8("ab\xffc"))
}

func TestSafeTextCollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "one two three", SafeText("  one\n\ttwo   three \r\n"))
}

package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	assert.Equal(t, 100.0, Ratio("one more time", "one more time"))
	assert.Equal(t, 100.0, Ratio("", ""))
	assert.Equal(t, 75.0, Ratio("abcd", "abce"))
	assert.InDelta(t, 57.14, Ratio("kitten", "sitting"), 0.01)
	assert.Equal(t, 0.0, Ratio("abc", "xyz"))
}

func TestPartialRatio(t *testing.T) {
	assert.Equal(t, 100.0, PartialRatio("hello", "say hello world"))
	assert.Equal(t, 100.0, PartialRatio("say hello world", "hello"))
	assert.Equal(t, 0.0, PartialRatio("", "anything"))
	assert.Greater(t, PartialRatio("daft punk", "daft punx live set"), 80.0)
}

func TestTokenOverlap(t *testing.T) {
	assert.Equal(t, 100.0, TokenOverlap("one two", "two one three"))
	assert.Equal(t, 50.0, TokenOverlap("one four", "one two"))
	assert.Equal(t, 0.0, TokenOverlap("", "whatever"))
	assert.Equal(t, 0.0, TokenOverlap("word", ""))
}

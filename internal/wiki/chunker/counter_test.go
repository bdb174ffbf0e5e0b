package chunker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCounter_Count(t *testing.T) {
	counter, err := NewTokenCounter("")
	require.NoError(t, err)

	assert.Equal(t, 0, counter.Count(""))
	assert.Greater(t, counter.Count("hello world"), 0)

	// 更长的文本 token 数更多
	short := counter.Count("one sentence")
	long := counter.Count("one sentence followed by a much longer sentence with many more words")
	assert.Greater(t, long, short)
}

func TestNewTokenCounter_InvalidEncoding(t *testing.T) {
	_, err := NewTokenCounter("no_such_encoding")
	assert.Error(t, err)
}

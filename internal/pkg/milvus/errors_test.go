package milvus

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Message(t *testing.T) {
	err := WrapError("Search", errors.New("boom"), "wiki_chunks", "embedding")
	assert.Contains(t, err.Error(), "Search failed")
	assert.Contains(t, err.Error(), "collection=wiki_chunks")
	assert.Contains(t, err.Error(), "field=embedding")
	assert.Contains(t, err.Error(), "boom")
}

func TestError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	err := WrapError("Insert", inner, "wiki_chunks", "")
	assert.True(t, errors.Is(err, inner))
}

func TestWrapError_Nil(t *testing.T) {
	assert.Nil(t, WrapError("Insert", nil, "wiki_chunks", ""))
}

func TestIsTimeout(t *testing.T) {
	assert.True(t, IsTimeout(ErrOperationTimeout))
	assert.True(t, IsTimeout(errors.New("context deadline exceeded")))
	assert.False(t, IsTimeout(errors.New("boom")))
	assert.False(t, IsTimeout(nil))
}

func TestIsConnectionFailed(t *testing.T) {
	assert.True(t, IsConnectionFailed(ErrConnectionFailed))
	assert.True(t, IsConnectionFailed(errors.New("failed to dial target")))
	assert.False(t, IsConnectionFailed(errors.New("boom")))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(ErrCollectionNotFound))
	assert.True(t, IsNotFound(errors.New("collection does not exist")))
	assert.False(t, IsNotFound(errors.New("boom")))
}

package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/wikivec/wikivec/internal/wiki/types"
)

func TestArticle_Validate(t *testing.T) {
	valid := func() *Article {
		return &Article{
			Title:  "Go (programming language)",
			Status: string(types.ArticleStatusPending),
		}
	}

	assert.NoError(t, valid().Validate())

	a := valid()
	a.Title = ""
	assert.ErrorIs(t, a.Validate(), ErrInvalidTitle)

	a = valid()
	a.Status = "unknown"
	assert.ErrorIs(t, a.Validate(), ErrInvalidArticleStatus)
}

func TestArticle_StatusTransitions(t *testing.T) {
	a := &Article{Title: "T", Status: string(types.ArticleStatusPending)}
	assert.True(t, a.IsPending())

	a.SetStatus(types.ArticleStatusCompleted)
	assert.True(t, a.IsCompleted())

	a.SetError(assert.AnError)
	assert.Equal(t, string(types.ArticleStatusFailed), a.Status)
	assert.NotEmpty(t, a.ErrorMessage)
}

func TestChunk_Validate(t *testing.T) {
	valid := func() *Chunk {
		return &Chunk{
			ArticleID:  uuid.New(),
			ChunkIndex: 0,
			Content:    "some text",
			TokenCount: 3,
			MilvusID:   uuid.NewString(),
		}
	}

	assert.NoError(t, valid().Validate())

	c := valid()
	c.ArticleID = uuid.Nil
	assert.ErrorIs(t, c.Validate(), ErrInvalidArticleID)

	c = valid()
	c.Content = ""
	assert.ErrorIs(t, c.Validate(), ErrEmptyContent)

	c = valid()
	c.ChunkIndex = -1
	assert.ErrorIs(t, c.Validate(), ErrInvalidChunkIndex)

	c = valid()
	c.TokenCount = 0
	assert.ErrorIs(t, c.Validate(), ErrInvalidTokenCount)

	c = valid()
	c.MilvusID = ""
	assert.ErrorIs(t, c.Validate(), ErrInvalidMilvusID)
}

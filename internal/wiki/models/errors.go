package models

import "errors"

var (
	ErrInvalidArticleID     = errors.New("invalid article id")
	ErrInvalidTitle         = errors.New("article title is required")
	ErrInvalidArticleStatus = errors.New("invalid article status")
	ErrEmptyContent         = errors.New("chunk content is empty")
	ErrInvalidChunkIndex    = errors.New("chunk index must be non-negative")
	ErrInvalidTokenCount    = errors.New("token count must be positive")
	ErrInvalidMilvusID      = errors.New("milvus id is required")
)

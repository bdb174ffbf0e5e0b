package models

import (
	"time"

	"github.com/google/uuid"
)

// Chunk 分块模型
type Chunk struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ArticleID uuid.UUID `gorm:"type:uuid;not null;index"`

	// 分块信息
	ChunkIndex int    `gorm:"not null"` // 块序号（从 0 开始）
	Content    string `gorm:"type:text;not null"`
	TokenCount int    `gorm:"not null"` // tiktoken 精确计数

	// Milvus 向量 ID（与 chunk.ID 相同）
	MilvusID string `gorm:"type:varchar(128);not null;uniqueIndex"`

	// 时间戳
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`

	// 关联
	Article *Article `gorm:"foreignKey:ArticleID"`
}

// TableName 指定表名
func (Chunk) TableName() string {
	return "chunks"
}

// Validate 验证分块
func (c *Chunk) Validate() error {
	if c.ArticleID == uuid.Nil {
		return ErrInvalidArticleID
	}

	if c.Content == "" {
		return ErrEmptyContent
	}

	if c.ChunkIndex < 0 {
		return ErrInvalidChunkIndex
	}

	if c.TokenCount <= 0 {
		return ErrInvalidTokenCount
	}

	if c.MilvusID == "" {
		return ErrInvalidMilvusID
	}

	return nil
}

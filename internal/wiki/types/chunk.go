package types

import (
	"time"

	"github.com/google/uuid"
)

// Chunk 分块业务对象
type Chunk struct {
	ID        uuid.UUID `json:"id"`
	ArticleID uuid.UUID `json:"article_id"`

	ChunkIndex int    `json:"chunk_index"`
	Content    string `json:"content"`
	TokenCount int    `json:"token_count"`

	// Milvus 向量 ID
	MilvusID string `json:"milvus_id"`

	CreatedAt time.Time `json:"created_at"`
}

// ChunkWithScore 带相似度分数的分块（搜索结果）
type ChunkWithScore struct {
	Chunk
	ArticleTitle string  `json:"article_title"`
	Score        float32 `json:"score"`
	Distance     float32 `json:"distance"`
}

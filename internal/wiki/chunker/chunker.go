package chunker

import (
	"context"
)

// Chunker 文本分块接口
type Chunker interface {
	// Chunk 将清洗后的文本分块
	Chunk(ctx context.Context, text string) ([]*TextChunk, error)

	// ChunkSize 返回目标分块大小（估算 token 数）
	ChunkSize() int

	// ChunkOverlap 返回分块重叠大小
	ChunkOverlap() int
}

// TextChunk 文本分块
type TextChunk struct {
	Index      int    // 块序号（从 0 开始）
	Content    string // 块内容
	TokenCount int    // 估算 token 数量
}

package chunker

import (
	"context"
	"fmt"
	"strings"
)

// paragraphSeparator 段落分隔符，拆分与重组使用同一个
const paragraphSeparator = "\n\n"

// ParagraphChunker 基于段落的贪心分块器。
// 按空行拆分段落后顺序累积，估算大小超出目标时落块。
// 单个段落永远不会被拆开，超大段落独立成块。
type ParagraphChunker struct {
	targetTokens int
}

// NewParagraphChunker 创建段落分块器，目标大小必须为正数
func NewParagraphChunker(targetTokens int) (*ParagraphChunker, error) {
	if targetTokens <= 0 {
		return nil, fmt.Errorf("target tokens must be positive, got %d", targetTokens)
	}
	return &ParagraphChunker{targetTokens: targetTokens}, nil
}

// Chunk 将文本按段落贪心分块
func (c *ParagraphChunker) Chunk(ctx context.Context, text string) ([]*TextChunk, error) {
	if text == "" {
		return []*TextChunk{}, nil
	}

	paragraphs := strings.Split(text, paragraphSeparator)

	chunks := make([]*TextChunk, 0)
	accumulator := make([]string, 0)

	flush := func() {
		content := strings.Join(accumulator, paragraphSeparator)
		chunks = append(chunks, &TextChunk{
			Index:      len(chunks),
			Content:    content,
			TokenCount: EstimateTokens(content),
		})
		accumulator = accumulator[:0]
	}

	for _, para := range paragraphs {
		// 空累积器无条件接收段落，超大段落也独立成块
		if len(accumulator) == 0 {
			accumulator = append(accumulator, para)
			continue
		}

		current := EstimateTokens(strings.Join(accumulator, paragraphSeparator))
		incoming := EstimateTokens(para)

		// 严格大于才落块，恰好等于目标时留在当前块
		if current+incoming > c.targetTokens {
			flush()
		}
		accumulator = append(accumulator, para)
	}

	if len(accumulator) > 0 {
		flush()
	}

	return chunks, nil
}

// ChunkSize 返回目标分块大小
func (c *ParagraphChunker) ChunkSize() int {
	return c.targetTokens
}

// ChunkOverlap 固定返回 0，本分块器不产生重叠
func (c *ParagraphChunker) ChunkOverlap() int {
	return 0
}

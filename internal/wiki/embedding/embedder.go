package embedding

import (
	"context"

	"github.com/wikivec/wikivec/internal/wiki/types"
)

// Embedder 文本向量化接口
type Embedder interface {
	// Embed 对单个文本生成向量
	Embed(ctx context.Context, text string) ([]float32, error)

	// BatchEmbed 批量生成向量
	BatchEmbed(ctx context.Context, texts []string) ([][]float32, error)

	// Dimension 返回向量维度
	Dimension() int

	// Provider 返回 Provider 名称
	Provider() types.EmbeddingProvider

	// Model 返回模型名称
	Model() string
}

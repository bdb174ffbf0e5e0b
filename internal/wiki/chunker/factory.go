package chunker

import (
	"fmt"

	"github.com/wikivec/wikivec/internal/wiki/types"
)

// Factory Chunker 工厂
type Factory struct{}

// NewFactory 创建 Chunker 工厂
func NewFactory() *Factory {
	return &Factory{}
}

// CreateChunkerConfig 创建 Chunker 配置
type CreateChunkerConfig struct {
	Strategy     types.ChunkStrategy
	TargetTokens int
}

// CreateChunker 创建 Chunker，策略为空时默认段落分块
func (f *Factory) CreateChunker(cfg *CreateChunkerConfig) (Chunker, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	switch cfg.Strategy {
	case types.ChunkStrategyParagraph, "":
		return NewParagraphChunker(cfg.TargetTokens)

	default:
		return nil, fmt.Errorf("unsupported chunk strategy: %s", cfg.Strategy)
	}
}

package embedding

import (
	"fmt"
	"time"

	"github.com/wikivec/wikivec/internal/conf"
	"github.com/wikivec/wikivec/internal/pkg/logger"
	"github.com/wikivec/wikivec/internal/pkg/redis"
	"github.com/wikivec/wikivec/internal/wiki/types"
)

// NewEmbedder 根据配置创建 Embedder。
// cache 不为 nil 且配置了缓存 TTL 时包一层缓存装饰器。
func NewEmbedder(cfg *conf.EmbeddingConfig, cache *redis.Client, log *logger.Logger) (Embedder, error) {
	if cfg == nil {
		return nil, fmt.Errorf("embedding config is required")
	}

	provider := types.EmbeddingProvider(cfg.Provider)
	if !provider.Valid() {
		return nil, fmt.Errorf("unsupported embedding provider: %s", cfg.Provider)
	}

	embedder, err := NewOpenAIEmbedder(&OpenAIEmbedderConfig{
		APIKey:    cfg.APIKey,
		BaseURL:   cfg.BaseURL,
		Model:     cfg.Model,
		Dimension: cfg.Dimensions,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create openai embedder: %w", err)
	}

	if cache != nil && cfg.CacheTTL > 0 {
		return NewCacheEmbedder(embedder, cache, &CacheEmbedderConfig{
			TTL: time.Duration(cfg.CacheTTL) * time.Second,
		}, log), nil
	}

	return embedder, nil
}

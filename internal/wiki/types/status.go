package types

// ArticleStatus 条目处理状态
type ArticleStatus string

const (
	// ArticleStatusPending 待处理
	ArticleStatusPending ArticleStatus = "pending"
	// ArticleStatusProcessing 处理中
	ArticleStatusProcessing ArticleStatus = "processing"
	// ArticleStatusCompleted 处理完成
	ArticleStatusCompleted ArticleStatus = "completed"
	// ArticleStatusFailed 处理失败
	ArticleStatusFailed ArticleStatus = "failed"
)

// Valid 检查状态是否有效
func (s ArticleStatus) Valid() bool {
	switch s {
	case ArticleStatusPending, ArticleStatusProcessing, ArticleStatusCompleted, ArticleStatusFailed:
		return true
	}
	return false
}

// String 返回字符串表示
func (s ArticleStatus) String() string {
	return string(s)
}

// EmbeddingProvider Embedding 提供商
type EmbeddingProvider string

const (
	// EmbeddingProviderOpenAI OpenAI Embedding API
	EmbeddingProviderOpenAI EmbeddingProvider = "openai"
)

// Valid 检查 Embedding 提供商是否有效
func (ep EmbeddingProvider) Valid() bool {
	return ep == EmbeddingProviderOpenAI
}

// String 返回字符串表示
func (ep EmbeddingProvider) String() string {
	return string(ep)
}

// ChunkStrategy 分块策略
type ChunkStrategy string

const (
	// ChunkStrategyParagraph 段落贪心分块
	ChunkStrategyParagraph ChunkStrategy = "paragraph"
)

// Valid 检查分块策略是否有效
func (cs ChunkStrategy) Valid() bool {
	return cs == ChunkStrategyParagraph
}

// String 返回字符串表示
func (cs ChunkStrategy) String() string {
	return string(cs)
}

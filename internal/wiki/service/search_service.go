package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/wikivec/wikivec/internal/pkg/logger"
	"github.com/wikivec/wikivec/internal/wiki/embedding"
	"github.com/wikivec/wikivec/internal/wiki/models"
	"github.com/wikivec/wikivec/internal/wiki/repository"
	"github.com/wikivec/wikivec/internal/wiki/storage"
	"github.com/wikivec/wikivec/internal/wiki/types"
)

var (
	ErrEmptyQuery = errors.New("search query is empty")
)

// SearchConfig 搜索配置
type SearchConfig struct {
	Collection string  // Milvus 集合名
	TopK       int     // 默认返回条数
	MinScore   float32 // 默认分数下限
}

// SearchService 语义搜索服务。
// 查询向量化后在 Milvus 检索，再回 Postgres 取分块内容和条目标题。
type SearchService struct {
	embedder    embedding.Embedder
	vectorStore storage.VectorStore
	chunkRepo   repository.ChunkRepository

	config *SearchConfig
	logger *logger.Logger
}

// NewSearchService 创建搜索服务
func NewSearchService(
	embedder embedding.Embedder,
	vectorStore storage.VectorStore,
	chunkRepo repository.ChunkRepository,
	cfg *SearchConfig,
	log *logger.Logger,
) (*SearchService, error) {
	if cfg == nil || cfg.Collection == "" {
		return nil, fmt.Errorf("collection is required")
	}
	if cfg.TopK <= 0 {
		cfg.TopK = 10
	}
	if log == nil {
		log = logger.L()
	}

	return &SearchService{
		embedder:    embedder,
		vectorStore: vectorStore,
		chunkRepo:   chunkRepo,
		config:      cfg,
		logger:      log,
	}, nil
}

// Search 执行语义搜索
func (s *SearchService) Search(ctx context.Context, req *types.SearchRequest) (*types.SearchResponse, error) {
	if req == nil || req.Query == "" {
		return nil, ErrEmptyQuery
	}

	topK := req.TopK
	if topK <= 0 {
		topK = s.config.TopK
	}
	minScore := req.MinScore
	if minScore <= 0 {
		minScore = s.config.MinScore
	}

	start := time.Now()

	queryVector, err := s.embedder.Embed(ctx, req.Query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	hits, err := s.vectorStore.Search(ctx, &storage.SearchVectorRequest{
		CollectionName: s.config.Collection,
		Vector:         queryVector,
		TopK:           topK,
		MinScore:       minScore,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search vectors: %w", err)
	}

	results, err := s.hydrate(ctx, hits)
	if err != nil {
		return nil, err
	}

	took := time.Since(start).Milliseconds()
	s.logger.Info("search completed",
		zap.String("query", req.Query),
		zap.Int("hits", len(results)),
		zap.Int64("took_ms", took))

	return &types.SearchResponse{
		Query:   req.Query,
		Results: results,
		Total:   len(results),
		Took:    took,
	}, nil
}

// hydrate 按 Milvus 返回顺序组装搜索结果
func (s *SearchService) hydrate(ctx context.Context, hits []*storage.SearchResult) ([]*types.ChunkWithScore, error) {
	if len(hits) == 0 {
		return []*types.ChunkWithScore{}, nil
	}

	milvusIDs := make([]string, len(hits))
	for i, h := range hits {
		milvusIDs[i] = h.ID
	}

	chunks, err := s.chunkRepo.BatchGetByMilvusIDs(ctx, milvusIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load chunks: %w", err)
	}

	byMilvusID := make(map[string]*models.Chunk, len(chunks))
	for _, c := range chunks {
		byMilvusID[c.MilvusID] = c
	}

	results := make([]*types.ChunkWithScore, 0, len(hits))
	for _, h := range hits {
		c, ok := byMilvusID[h.ID]
		if !ok {
			// 向量库领先于元数据库时可能出现孤儿 ID
			s.logger.Warn("milvus hit has no chunk record",
				zap.String("milvus_id", h.ID))
			continue
		}

		title := ""
		if c.Article != nil {
			title = c.Article.Title
		}

		results = append(results, &types.ChunkWithScore{
			Chunk: types.Chunk{
				ID:         c.ID,
				ArticleID:  c.ArticleID,
				ChunkIndex: c.ChunkIndex,
				Content:    c.Content,
				TokenCount: c.TokenCount,
				MilvusID:   c.MilvusID,
				CreatedAt:  c.CreatedAt,
			},
			ArticleTitle: title,
			Score:        h.Score,
			Distance:     h.Distance,
		})
	}

	return results, nil
}

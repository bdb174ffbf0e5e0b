package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wikivec/wikivec/internal/pkg/database"
	"github.com/wikivec/wikivec/internal/pkg/logger"
	"github.com/wikivec/wikivec/internal/wiki/chunker"
	"github.com/wikivec/wikivec/internal/wiki/embedding"
	"github.com/wikivec/wikivec/internal/wiki/loader"
	"github.com/wikivec/wikivec/internal/wiki/models"
	"github.com/wikivec/wikivec/internal/wiki/repository"
	"github.com/wikivec/wikivec/internal/wiki/storage"
	"github.com/wikivec/wikivec/internal/wiki/types"
	"github.com/wikivec/wikivec/internal/wikitext"
)

// Processor 单条目处理器。
// 流程：清洗标记 → 段落分块 → 精确计数 → 向量化 → 双写 Milvus 和 Postgres。
type Processor struct {
	articleRepo repository.ArticleRepository
	chunkRepo   repository.ChunkRepository
	chunker     chunker.Chunker
	counter     chunker.Counter
	embedder    embedding.Embedder
	vectorStore storage.VectorStore

	collection string
	batchSize  int
	logger     *logger.Logger
}

// ProcessorConfig 处理器配置
type ProcessorConfig struct {
	Collection string // Milvus 集合名
	BatchSize  int    // 向量化批大小
}

// NewProcessor 创建处理器
func NewProcessor(
	articleRepo repository.ArticleRepository,
	chunkRepo repository.ChunkRepository,
	chk chunker.Chunker,
	counter chunker.Counter,
	embedder embedding.Embedder,
	vectorStore storage.VectorStore,
	cfg *ProcessorConfig,
	log *logger.Logger,
) (*Processor, error) {
	if cfg == nil || cfg.Collection == "" {
		return nil, fmt.Errorf("collection is required")
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 64
	}
	if log == nil {
		log = logger.L()
	}

	return &Processor{
		articleRepo: articleRepo,
		chunkRepo:   chunkRepo,
		chunker:     chk,
		counter:     counter,
		embedder:    embedder,
		vectorStore: vectorStore,
		collection:  cfg.Collection,
		batchSize:   cfg.BatchSize,
		logger:      log,
	}, nil
}

// Process 处理一条原始条目，幂等：已完成的条目直接跳过
func (p *Processor) Process(ctx context.Context, raw *loader.RawArticle) error {
	// 已入库且完成的条目不重复处理
	if existing, err := p.articleRepo.GetByTitle(ctx, raw.Title); err == nil {
		if existing.IsCompleted() {
			p.logger.Debug("article already processed, skipping",
				zap.String("title", raw.Title))
			return nil
		}
		// 上次失败的条目先清理残留分块再重试
		if err := p.cleanup(ctx, existing); err != nil {
			return err
		}
		return p.process(ctx, existing, raw)
	}

	article := &models.Article{
		Title:   raw.Title,
		URL:     raw.URL,
		RawSize: int64(len(raw.Text)),
		Status:  string(types.ArticleStatusPending),
	}

	if err := p.articleRepo.Create(ctx, article); err != nil {
		if database.IsDuplicateKeyError(err) {
			p.logger.Debug("article already exists, skipping",
				zap.String("title", raw.Title))
			return nil
		}
		return fmt.Errorf("failed to create article record: %w", err)
	}

	return p.process(ctx, article, raw)
}

func (p *Processor) process(ctx context.Context, article *models.Article, raw *loader.RawArticle) error {
	if err := p.articleRepo.UpdateStatus(ctx, article.ID, types.ArticleStatusProcessing, ""); err != nil {
		return fmt.Errorf("failed to mark article processing: %w", err)
	}

	if err := p.run(ctx, article, raw); err != nil {
		if updateErr := p.articleRepo.UpdateStatus(ctx, article.ID, types.ArticleStatusFailed, err.Error()); updateErr != nil {
			p.logger.Error("failed to mark article failed",
				zap.String("title", article.Title),
				zap.Error(updateErr))
		}
		return err
	}

	return p.articleRepo.UpdateStatus(ctx, article.ID, types.ArticleStatusCompleted, "")
}

// run 执行核心流水线
func (p *Processor) run(ctx context.Context, article *models.Article, raw *loader.RawArticle) error {
	cleaned := wikitext.Clean(raw.Text)

	textChunks, err := p.chunker.Chunk(ctx, cleaned)
	if err != nil {
		return fmt.Errorf("failed to chunk article: %w", err)
	}

	if len(textChunks) == 0 {
		p.logger.Info("article produced no chunks",
			zap.String("title", article.Title))
		return nil
	}

	chunks := make([]*models.Chunk, len(textChunks))
	totalTokens := 0
	for i, tc := range textChunks {
		id := uuid.New()
		tokenCount := p.counter.Count(tc.Content)
		totalTokens += tokenCount

		chunks[i] = &models.Chunk{
			ID:         id,
			ArticleID:  article.ID,
			ChunkIndex: tc.Index,
			Content:    tc.Content,
			TokenCount: tokenCount,
			MilvusID:   id.String(),
		}
	}

	// 分批向量化并写入 Milvus
	for start := 0; start < len(chunks); start += p.batchSize {
		end := start + p.batchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[start:end]

		texts := make([]string, len(batch))
		for i, c := range batch {
			texts[i] = c.Content
		}

		embeddings, err := p.embedder.BatchEmbed(ctx, texts)
		if err != nil {
			return fmt.Errorf("failed to embed chunks: %w", err)
		}
		if len(embeddings) != len(batch) {
			return fmt.Errorf("embedding count mismatch: got %d, want %d", len(embeddings), len(batch))
		}

		vectors := make([]*storage.VectorData, len(batch))
		for i, c := range batch {
			vectors[i] = &storage.VectorData{
				ID:     c.MilvusID,
				Vector: embeddings[i],
			}
		}

		if err := p.vectorStore.BatchInsert(ctx, &storage.BatchInsertVectorRequest{
			CollectionName: p.collection,
			Vectors:        vectors,
		}); err != nil {
			return fmt.Errorf("failed to insert vectors: %w", err)
		}
	}

	if err := p.chunkRepo.BatchCreate(ctx, chunks); err != nil {
		return fmt.Errorf("failed to persist chunks: %w", err)
	}

	if err := p.articleRepo.UpdateStats(ctx, article.ID, len(chunks), totalTokens); err != nil {
		return fmt.Errorf("failed to update article stats: %w", err)
	}

	p.logger.Info("article processed",
		zap.String("title", article.Title),
		zap.Int("chunks", len(chunks)),
		zap.Int("tokens", totalTokens))

	return nil
}

// cleanup 清理上次失败运行留下的分块和向量
func (p *Processor) cleanup(ctx context.Context, article *models.Article) error {
	chunks, _, err := p.chunkRepo.GetByArticleID(ctx, article.ID, 1, 10000)
	if err != nil {
		return fmt.Errorf("failed to load stale chunks: %w", err)
	}

	if len(chunks) > 0 {
		ids := make([]string, len(chunks))
		for i, c := range chunks {
			ids[i] = c.MilvusID
		}
		if err := p.vectorStore.Delete(ctx, p.collection, ids); err != nil {
			return fmt.Errorf("failed to delete stale vectors: %w", err)
		}
		if err := p.chunkRepo.DeleteByArticleID(ctx, article.ID); err != nil {
			return fmt.Errorf("failed to delete stale chunks: %w", err)
		}
	}

	return nil
}

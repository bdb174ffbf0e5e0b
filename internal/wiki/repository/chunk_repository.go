package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wikivec/wikivec/internal/pkg/database"
	"github.com/wikivec/wikivec/internal/wiki/models"
)

// ChunkRepository 分块仓储接口
type ChunkRepository interface {
	// Create 创建分块
	Create(ctx context.Context, chunk *models.Chunk) error

	// BatchCreate 批量创建分块
	BatchCreate(ctx context.Context, chunks []*models.Chunk) error

	// GetByID 根据 ID 获取分块
	GetByID(ctx context.Context, id uuid.UUID) (*models.Chunk, error)

	// GetByArticleID 获取条目的所有分块
	GetByArticleID(ctx context.Context, articleID uuid.UUID, page, size int) ([]*models.Chunk, int64, error)

	// DeleteByArticleID 删除条目的所有分块
	DeleteByArticleID(ctx context.Context, articleID uuid.UUID) error

	// BatchGetByMilvusIDs 批量根据 Milvus ID 获取分块
	BatchGetByMilvusIDs(ctx context.Context, milvusIDs []string) ([]*models.Chunk, error)
}

// chunkRepository 分块仓储实现
type chunkRepository struct {
	db *database.DB
}

// NewChunkRepository 创建分块仓储
func NewChunkRepository(db *database.DB) ChunkRepository {
	return &chunkRepository{db: db}
}

// Create 创建分块
func (r *chunkRepository) Create(ctx context.Context, chunk *models.Chunk) error {
	if err := chunk.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(chunk).Error; err != nil {
		return fmt.Errorf("failed to create chunk: %w", err)
	}

	return nil
}

// BatchCreate 批量创建分块
func (r *chunkRepository) BatchCreate(ctx context.Context, chunks []*models.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	for _, chunk := range chunks {
		if err := chunk.Validate(); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	if err := r.db.WithContext(ctx).CreateInBatches(chunks, 100).Error; err != nil {
		return fmt.Errorf("failed to batch create chunks: %w", err)
	}

	return nil
}

// GetByID 根据 ID 获取分块
func (r *chunkRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Chunk, error) {
	var chunk models.Chunk
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&chunk).Error; err != nil {
		return nil, fmt.Errorf("failed to get chunk: %w", err)
	}
	return &chunk, nil
}

// GetByArticleID 获取条目的所有分块（按 chunk_index 排序）
func (r *chunkRepository) GetByArticleID(ctx context.Context, articleID uuid.UUID, page, size int) ([]*models.Chunk, int64, error) {
	var chunks []*models.Chunk
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Chunk{}).
		Where("article_id = ?", articleID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count chunks: %w", err)
	}

	offset := (page - 1) * size
	if err := r.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("chunk_index ASC").
		Limit(size).
		Offset(offset).
		Find(&chunks).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list chunks: %w", err)
	}

	return chunks, total, nil
}

// DeleteByArticleID 删除条目的所有分块
func (r *chunkRepository) DeleteByArticleID(ctx context.Context, articleID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Delete(&models.Chunk{}).Error; err != nil {
		return fmt.Errorf("failed to delete chunks: %w", err)
	}
	return nil
}

// BatchGetByMilvusIDs 批量根据 Milvus ID 获取分块
func (r *chunkRepository) BatchGetByMilvusIDs(ctx context.Context, milvusIDs []string) ([]*models.Chunk, error) {
	if len(milvusIDs) == 0 {
		return []*models.Chunk{}, nil
	}

	var chunks []*models.Chunk
	if err := r.db.WithContext(ctx).
		Preload("Article").
		Where("milvus_id IN ?", milvusIDs).
		Find(&chunks).Error; err != nil {
		return nil, fmt.Errorf("failed to batch get chunks: %w", err)
	}

	return chunks, nil
}

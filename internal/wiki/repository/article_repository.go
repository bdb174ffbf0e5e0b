package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wikivec/wikivec/internal/pkg/database"
	"github.com/wikivec/wikivec/internal/wiki/models"
	"github.com/wikivec/wikivec/internal/wiki/types"
)

// ArticleRepository 条目仓储接口
type ArticleRepository interface {
	// Create 创建条目
	Create(ctx context.Context, article *models.Article) error

	// GetByID 根据 ID 获取条目
	GetByID(ctx context.Context, id uuid.UUID) (*models.Article, error)

	// GetByTitle 根据标题获取条目
	GetByTitle(ctx context.Context, title string) (*models.Article, error)

	// List 分页列出条目
	List(ctx context.Context, page, size int) ([]*models.Article, int64, error)

	// UpdateStatus 更新处理状态
	UpdateStatus(ctx context.Context, id uuid.UUID, status types.ArticleStatus, errMsg string) error

	// UpdateStats 更新分块和 token 统计
	UpdateStats(ctx context.Context, id uuid.UUID, chunkCount, tokenCount int) error

	// Delete 删除条目
	Delete(ctx context.Context, id uuid.UUID) error
}

// articleRepository 条目仓储实现
type articleRepository struct {
	db *database.DB
}

// NewArticleRepository 创建条目仓储
func NewArticleRepository(db *database.DB) ArticleRepository {
	return &articleRepository{db: db}
}

// Create 创建条目
func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	if err := article.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(article).Error; err != nil {
		return fmt.Errorf("failed to create article: %w", err)
	}

	return nil
}

// GetByID 根据 ID 获取条目
func (r *articleRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Article, error) {
	var article models.Article
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&article).Error; err != nil {
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	return &article, nil
}

// GetByTitle 根据标题获取条目
func (r *articleRepository) GetByTitle(ctx context.Context, title string) (*models.Article, error) {
	var article models.Article
	if err := r.db.WithContext(ctx).Where("title = ?", title).First(&article).Error; err != nil {
		return nil, fmt.Errorf("failed to get article by title: %w", err)
	}
	return &article, nil
}

// List 分页列出条目
func (r *articleRepository) List(ctx context.Context, page, size int) ([]*models.Article, int64, error) {
	var articles []*models.Article
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Article{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
	}

	offset := (page - 1) * size
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(size).
		Offset(offset).
		Find(&articles).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list articles: %w", err)
	}

	return articles, total, nil
}

// UpdateStatus 更新处理状态
func (r *articleRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status types.ArticleStatus, errMsg string) error {
	updates := map[string]interface{}{
		"status":        status.String(),
		"error_message": errMsg,
	}

	if err := r.db.WithContext(ctx).
		Model(&models.Article{}).
		Where("id = ?", id).
		Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update article status: %w", err)
	}

	return nil
}

// UpdateStats 更新分块和 token 统计
func (r *articleRepository) UpdateStats(ctx context.Context, id uuid.UUID, chunkCount, tokenCount int) error {
	updates := map[string]interface{}{
		"chunk_count": chunkCount,
		"token_count": tokenCount,
	}

	if err := r.db.WithContext(ctx).
		Model(&models.Article{}).
		Where("id = ?", id).
		Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update article stats: %w", err)
	}

	return nil
}

// Delete 删除条目
func (r *articleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Article{}).Error; err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	return nil
}

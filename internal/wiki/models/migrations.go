package models

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/wikivec/wikivec/internal/pkg/database"
)

// AutoMigrate 自动迁移条目和分块表
func AutoMigrate(ctx context.Context, db *database.DB) error {
	// 按依赖顺序迁移表
	models := []interface{}{
		&Article{},
		&Chunk{},
	}

	for _, model := range models {
		if err := db.WithContext(ctx).AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	if err := createIndexes(ctx, db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	return nil
}

// createIndexes 创建额外的复合索引
func createIndexes(ctx context.Context, db *database.DB) error {
	if err := db.WithContext(ctx).Exec(`
		CREATE INDEX IF NOT EXISTS idx_article_status_created
		ON articles(status, created_at DESC)
	`).Error; err != nil {
		return err
	}

	if err := db.WithContext(ctx).Exec(`
		CREATE INDEX IF NOT EXISTS idx_chunk_article_index
		ON chunks(article_id, chunk_index)
	`).Error; err != nil {
		return err
	}

	return nil
}

// DropTables 删除条目和分块表（危险操作，仅用于重建索引）
func DropTables(ctx context.Context, db *database.DB) error {
	models := []interface{}{
		&Chunk{},
		&Article{},
	}

	for _, model := range models {
		if err := db.WithContext(ctx).Migrator().DropTable(model); err != nil {
			return fmt.Errorf("failed to drop table %T: %w", model, err)
		}
	}

	return nil
}

// MigrateWithLog 带日志的迁移
func MigrateWithLog(ctx context.Context, db *database.DB, logger *zap.Logger) error {
	logger.Info("starting schema migration")

	if err := AutoMigrate(ctx, db); err != nil {
		logger.Error("schema migration failed", zap.Error(err))
		return err
	}

	logger.Info("schema migration completed")
	return nil
}

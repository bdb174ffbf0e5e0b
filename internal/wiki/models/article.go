package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/wikivec/wikivec/internal/wiki/types"
)

// Article 条目模型
type Article struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`

	// 条目信息
	Title string `gorm:"type:varchar(512);not null;uniqueIndex"`
	URL   string `gorm:"type:varchar(1024)"`

	// 原始标记文本大小（字节）
	RawSize int64 `gorm:"default:0"`

	// 处理状态
	Status       string `gorm:"type:varchar(50);not null;default:'pending';index"` // pending, processing, completed, failed
	ErrorMessage string `gorm:"type:text"`

	// 统计信息
	ChunkCount int `gorm:"default:0"`
	TokenCount int `gorm:"default:0"`

	// 时间戳
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`

	// 关联
	Chunks []Chunk `gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
}

// TableName 指定表名
func (Article) TableName() string {
	return "articles"
}

// Validate 验证条目
func (a *Article) Validate() error {
	if a.Title == "" {
		return ErrInvalidTitle
	}

	status := types.ArticleStatus(a.Status)
	if !status.Valid() {
		return ErrInvalidArticleStatus
	}

	return nil
}

// IsPending 检查是否待处理
func (a *Article) IsPending() bool {
	return a.Status == string(types.ArticleStatusPending)
}

// IsCompleted 检查是否已完成
func (a *Article) IsCompleted() bool {
	return a.Status == string(types.ArticleStatusCompleted)
}

// SetStatus 设置状态
func (a *Article) SetStatus(status types.ArticleStatus) {
	a.Status = status.String()
}

// SetError 标记失败并记录错误信息
func (a *Article) SetError(err error) {
	a.Status = string(types.ArticleStatusFailed)
	if err != nil {
		a.ErrorMessage = err.Error()
	}
}

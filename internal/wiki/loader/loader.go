package loader

import (
	"context"
	"io"
)

// RawArticle 加载后的原始条目
type RawArticle struct {
	Title string // 条目标题
	URL   string // 来源 URL（可选）
	Text  string // 原始 wiki 标记文本
}

// Loader 语料加载器接口
type Loader interface {
	// Load 逐条读取语料，每读到一条调用 fn；fn 返回错误时中止
	Load(ctx context.Context, reader io.Reader, fn func(*RawArticle) error) error
}

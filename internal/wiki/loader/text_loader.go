package loader

import (
	"context"
	"fmt"
	"io"
)

// TextLoader 纯文本语料加载器，整个 reader 视为一个条目。
// 标题来自构造参数，适合单文件导入和调试。
type TextLoader struct {
	title string
	url   string
}

// NewTextLoader 创建纯文本加载器，标题必填
func NewTextLoader(title, url string) (*TextLoader, error) {
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	return &TextLoader{title: title, url: url}, nil
}

// Load 读取全部内容并回调一次
func (l *TextLoader) Load(ctx context.Context, reader io.Reader, fn func(*RawArticle) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read corpus: %w", err)
	}

	return fn(&RawArticle{
		Title: l.title,
		URL:   l.url,
		Text:  string(data),
	})
}

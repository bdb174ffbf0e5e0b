package loader

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/tidwall/gjson"
)

// 单行最大 16MB，长条目的原始标记可能很大
const maxLineSize = 16 * 1024 * 1024

// JSONLLoader JSON Lines 语料加载器。
// 每行一个 JSON 对象，字段：title（必填）、text（必填）、url（可选）。
type JSONLLoader struct{}

// NewJSONLLoader 创建 JSONL 加载器
func NewJSONLLoader() *JSONLLoader {
	return &JSONLLoader{}
}

// Load 逐行解析语料
func (l *JSONLLoader) Load(ctx context.Context, reader io.Reader, fn func(*RawArticle) error) error {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		if !gjson.ValidBytes(line) {
			return fmt.Errorf("invalid json at line %d", lineNo)
		}

		title := gjson.GetBytes(line, "title").String()
		if title == "" {
			return fmt.Errorf("missing title at line %d", lineNo)
		}

		article := &RawArticle{
			Title: title,
			URL:   gjson.GetBytes(line, "url").String(),
			Text:  gjson.GetBytes(line, "text").String(),
		}

		if err := fn(article); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read corpus: %w", err)
	}

	return nil
}

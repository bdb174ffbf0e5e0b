package chunker

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// Counter 文本 token 计数接口
type Counter interface {
	Count(text string) int
}

// TokenCounter 基于 tiktoken 的精确 token 计数器。
// 分块用估算值，入库前用它给每个块记录真实 token 数。
type TokenCounter struct {
	encoding *tiktoken.Tiktoken
}

// NewTokenCounter 创建计数器，encoding 为空时默认 cl100k_base
func NewTokenCounter(encoding string) (*TokenCounter, error) {
	if encoding == "" {
		encoding = "cl100k_base"
	}

	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to get encoding: %w", err)
	}

	return &TokenCounter{encoding: enc}, nil
}

// Count 返回文本的精确 token 数
func (c *TokenCounter) Count(text string) int {
	if text == "" {
		return 0
	}
	return len(c.encoding.Encode(text, nil, nil))
}

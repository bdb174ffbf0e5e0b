package milvus

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCollectionNotFound Collection 不存在
	ErrCollectionNotFound = errors.New("milvus: collection not found")

	// ErrInvalidCollectionName Collection 名称无效
	ErrInvalidCollectionName = errors.New("milvus: invalid collection name")

	// ErrInvalidFieldName 字段名称无效
	ErrInvalidFieldName = errors.New("milvus: invalid field name")

	// ErrInvalidConfig 配置无效
	ErrInvalidConfig = errors.New("milvus: invalid config")

	// ErrInvalidSchema Schema 无效
	ErrInvalidSchema = errors.New("milvus: invalid schema")

	// ErrInvalidIndexType 索引类型无效
	ErrInvalidIndexType = errors.New("milvus: invalid index type")

	// ErrInvalidIndexParams 索引参数无效
	ErrInvalidIndexParams = errors.New("milvus: invalid index parameters")

	// ErrInvalidData 数据无效
	ErrInvalidData = errors.New("milvus: invalid data")

	// ErrInvalidVectorData 向量数据无效
	ErrInvalidVectorData = errors.New("milvus: invalid vector data")

	// ErrInvalidExpression 表达式无效
	ErrInvalidExpression = errors.New("milvus: invalid expression")

	// ErrClientClosed 客户端已关闭
	ErrClientClosed = errors.New("milvus: client is closed")

	// ErrConnectionFailed 连接失败
	ErrConnectionFailed = errors.New("milvus: connection failed")

	// ErrOperationTimeout 操作超时
	ErrOperationTimeout = errors.New("milvus: operation timeout")
)

// Error 带上下文的 Milvus 错误
type Error struct {
	Op         string
	Collection string
	Field      string
	Err        error
	Message    string
}

func (e *Error) Error() string {
	var msg string
	switch {
	case e.Collection != "" && e.Field != "":
		msg = fmt.Sprintf("milvus: %s failed for collection=%s, field=%s", e.Op, e.Collection, e.Field)
	case e.Collection != "":
		msg = fmt.Sprintf("milvus: %s failed for collection=%s", e.Op, e.Collection)
	case e.Field != "":
		msg = fmt.Sprintf("milvus: %s failed for field=%s", e.Op, e.Field)
	default:
		msg = fmt.Sprintf("milvus: %s failed", e.Op)
	}

	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Message)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsNotFound 判断是否为不存在错误
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrCollectionNotFound) {
		return true
	}
	return containsAny(err.Error(), []string{
		"not found",
		"not exist",
		"doesn't exist",
		"does not exist",
	})
}

// IsTimeout 判断是否为超时错误
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrOperationTimeout) {
		return true
	}
	return containsAny(err.Error(), []string{
		"timeout",
		"timed out",
		"deadline exceeded",
	})
}

// IsConnectionFailed 判断是否为连接错误
func IsConnectionFailed(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrConnectionFailed) {
		return true
	}
	return containsAny(err.Error(), []string{
		"connection",
		"connect",
		"dial",
		"unreachable",
	})
}

// WrapError 包装错误并附加操作上下文
func WrapError(op string, err error, collection, field string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Op:         op,
		Collection: collection,
		Field:      field,
		Err:        err,
	}
}

func containsAny(s string, substrs []string) bool {
	for _, substr := range substrs {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

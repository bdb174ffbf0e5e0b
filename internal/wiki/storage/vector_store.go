package storage

import (
	"context"
)

// VectorStore 向量存储接口
type VectorStore interface {
	// CreateCollection 创建集合（含索引和加载）
	CreateCollection(ctx context.Context, collectionName string, dimension int) error

	// DropCollection 删除集合
	DropCollection(ctx context.Context, collectionName string) error

	// CollectionExists 检查集合是否存在
	CollectionExists(ctx context.Context, collectionName string) (bool, error)

	// BatchInsert 批量插入向量
	BatchInsert(ctx context.Context, req *BatchInsertVectorRequest) error

	// Delete 按 ID 删除向量
	Delete(ctx context.Context, collectionName string, ids []string) error

	// Search 向量搜索
	Search(ctx context.Context, req *SearchVectorRequest) ([]*SearchResult, error)
}

// VectorData 向量数据
type VectorData struct {
	ID     string
	Vector []float32
}

// BatchInsertVectorRequest 批量插入向量请求
type BatchInsertVectorRequest struct {
	CollectionName string
	Vectors        []*VectorData
}

// SearchVectorRequest 向量搜索请求
type SearchVectorRequest struct {
	CollectionName string
	Vector         []float32
	TopK           int
	MinScore       float32
}

// SearchResult 搜索结果
type SearchResult struct {
	ID       string
	Score    float32
	Distance float32
}

package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/milvus-io/milvus/client/v2/column"
	"go.uber.org/zap"

	"github.com/wikivec/wikivec/internal/pkg/logger"
	"github.com/wikivec/wikivec/internal/pkg/milvus"
)

const vectorField = "embedding"

// MilvusStore Milvus 向量存储实现
type MilvusStore struct {
	client *milvus.Client
	logger *logger.Logger
}

// NewMilvusStore 创建 Milvus 向量存储
func NewMilvusStore(client *milvus.Client, lgr *logger.Logger) *MilvusStore {
	if lgr == nil {
		lgr = logger.L()
	}
	return &MilvusStore{
		client: client,
		logger: lgr,
	}
}

// CreateCollection 创建集合，建立 IVF_FLAT/IP 索引并加载到内存
func (s *MilvusStore) CreateCollection(ctx context.Context, collectionName string, dimension int) error {
	exists, err := s.client.HasCollection(ctx, collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection existence: %w", err)
	}
	if exists {
		return fmt.Errorf("collection %s already exists", collectionName)
	}

	schema := milvus.NewCollectionSchema(collectionName, "wiki article chunk vectors").
		AddField(milvus.NewFieldSchema("id", milvus.DataTypeVarChar).
			WithPrimaryKey(true).
			WithMaxLength(128)).
		AddField(milvus.NewFieldSchema(vectorField, milvus.DataTypeFloatVector).
			WithDimension(dimension))

	if err := s.client.CreateCollection(ctx, schema, nil); err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	// IP 度量，向量由 embedding API 归一化
	indexOpts := &milvus.IndexOptions{
		IndexType:  milvus.IndexTypeIVFFlat,
		MetricType: milvus.MetricTypeIP,
		Params: map[string]interface{}{
			"nlist": 1024,
		},
	}

	if err := s.client.CreateIndex(ctx, collectionName, vectorField, indexOpts); err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	if err := s.client.LoadCollection(ctx, collectionName, false); err != nil {
		return fmt.Errorf("failed to load collection: %w", err)
	}

	s.logger.Info("milvus collection created",
		zap.String("collection", collectionName),
		zap.Int("dimension", dimension))

	return nil
}

// DropCollection 删除集合
func (s *MilvusStore) DropCollection(ctx context.Context, collectionName string) error {
	if err := s.client.DropCollection(ctx, collectionName); err != nil {
		return fmt.Errorf("failed to drop collection: %w", err)
	}
	return nil
}

// CollectionExists 检查集合是否存在
func (s *MilvusStore) CollectionExists(ctx context.Context, collectionName string) (bool, error) {
	exists, err := s.client.HasCollection(ctx, collectionName)
	if err != nil {
		return false, fmt.Errorf("failed to check collection: %w", err)
	}
	return exists, nil
}

// BatchInsert 批量插入向量
func (s *MilvusStore) BatchInsert(ctx context.Context, req *BatchInsertVectorRequest) error {
	if len(req.Vectors) == 0 {
		return fmt.Errorf("no vectors to insert")
	}

	ids := make([]string, len(req.Vectors))
	vectors := make([][]float32, len(req.Vectors))
	for i, v := range req.Vectors {
		ids[i] = v.ID
		vectors[i] = v.Vector
	}

	columns := []column.Column{
		column.NewColumnVarChar("id", ids),
		column.NewColumnFloatVector(vectorField, len(vectors[0]), vectors),
	}

	if _, err := s.client.Insert(ctx, req.CollectionName, columns); err != nil {
		return fmt.Errorf("failed to insert vectors: %w", err)
	}

	if err := s.client.Flush(ctx, req.CollectionName, false); err != nil {
		s.logger.Warn("failed to flush collection after insert",
			zap.String("collection", req.CollectionName),
			zap.Error(err))
	}

	s.logger.Debug("vectors inserted",
		zap.String("collection", req.CollectionName),
		zap.Int("count", len(req.Vectors)))

	return nil
}

// Delete 按 ID 删除向量
func (s *MilvusStore) Delete(ctx context.Context, collectionName string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	quoted := make([]string, len(ids))
	for i, id := range ids {
		quoted[i] = fmt.Sprintf("%q", id)
	}
	expr := fmt.Sprintf("id in [%s]", strings.Join(quoted, ", "))

	if err := s.client.Delete(ctx, collectionName, expr); err != nil {
		return fmt.Errorf("failed to delete vectors: %w", err)
	}

	return nil
}

// Search 向量搜索
func (s *MilvusStore) Search(ctx context.Context, req *SearchVectorRequest) ([]*SearchResult, error) {
	searchOpts := &milvus.SearchOptions{
		OutputFields: []string{"id"},
	}

	results, err := s.client.Search(ctx, req.CollectionName, [][]float32{req.Vector}, vectorField, req.TopK, searchOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to search vectors: %w", err)
	}

	if len(results) == 0 {
		return []*SearchResult{}, nil
	}

	searchResults := make([]*SearchResult, 0, len(results[0]))
	for _, hit := range results[0] {
		if req.MinScore > 0 && hit.Score < req.MinScore {
			continue
		}

		id, _ := hit.ID.(string)
		if id == "" {
			if v, ok := hit.Fields["id"].(string); ok {
				id = v
			}
		}

		searchResults = append(searchResults, &SearchResult{
			ID:       id,
			Score:    hit.Score,
			Distance: 1 - hit.Score, // IP 距离转换
		})
	}

	return searchResults, nil
}

package milvus

import (
	"context"

	"github.com/milvus-io/milvus/client/v2/entity"
	"github.com/milvus-io/milvus/client/v2/index"
	"github.com/milvus-io/milvus/client/v2/milvusclient"
	"go.uber.org/zap"
)

// IndexOptions 索引创建选项
type IndexOptions struct {
	IndexType  IndexType
	MetricType MetricType
	Params     map[string]interface{}
}

// CreateIndex 创建索引
func (c *Client) CreateIndex(ctx context.Context, collectionName, fieldName string, opts *IndexOptions) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return ErrClientClosed
	}
	if collectionName == "" {
		return ErrInvalidCollectionName
	}
	if fieldName == "" {
		return ErrInvalidFieldName
	}
	if opts == nil {
		return ErrInvalidIndexParams
	}

	var idx index.Index
	switch opts.IndexType {
	case IndexTypeFlat:
		idx = index.NewFlatIndex(toEntityMetricType(opts.MetricType))
	case IndexTypeIVFFlat:
		nlist := 128
		if v, ok := opts.Params["nlist"].(int); ok {
			nlist = v
		}
		idx = index.NewIvfFlatIndex(toEntityMetricType(opts.MetricType), nlist)
	case IndexTypeIVFSQ8:
		nlist := 128
		if v, ok := opts.Params["nlist"].(int); ok {
			nlist = v
		}
		idx = index.NewIvfSQ8Index(toEntityMetricType(opts.MetricType), nlist)
	case IndexTypeHNSW:
		m := 16
		efConstruction := 200
		if v, ok := opts.Params["M"].(int); ok {
			m = v
		}
		if v, ok := opts.Params["efConstruction"].(int); ok {
			efConstruction = v
		}
		idx = index.NewHNSWIndex(toEntityMetricType(opts.MetricType), m, efConstruction)
	default:
		return ErrInvalidIndexType
	}

	createOpt := milvusclient.NewCreateIndexOption(collectionName, fieldName, idx)

	err := c.execWithRetry(ctx, "CreateIndex", func(ctx context.Context) error {
		task, err := c.client.CreateIndex(ctx, createOpt)
		if err != nil {
			return err
		}
		return task.Await(ctx)
	})
	if err != nil {
		c.logger.Error("failed to create index",
			zap.String("collection", collectionName),
			zap.String("field", fieldName),
			zap.Error(err))
		return WrapError("CreateIndex", err, collectionName, fieldName)
	}

	c.logger.Info("index created",
		zap.String("collection", collectionName),
		zap.String("field", fieldName),
		zap.String("index_type", opts.IndexType.String()))
	return nil
}

// DropIndex 删除索引
func (c *Client) DropIndex(ctx context.Context, collectionName, fieldName string) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return ErrClientClosed
	}
	if collectionName == "" {
		return ErrInvalidCollectionName
	}
	if fieldName == "" {
		return ErrInvalidFieldName
	}

	err := c.execWithRetry(ctx, "DropIndex", func(ctx context.Context) error {
		return c.client.DropIndex(ctx, milvusclient.NewDropIndexOption(collectionName, fieldName))
	})
	if err != nil {
		c.logger.Error("failed to drop index",
			zap.String("collection", collectionName),
			zap.String("field", fieldName),
			zap.Error(err))
		return WrapError("DropIndex", err, collectionName, fieldName)
	}

	return nil
}

// toEntityMetricType 转换为 entity.MetricType
func toEntityMetricType(mt MetricType) entity.MetricType {
	switch mt {
	case MetricTypeL2:
		return entity.L2
	case MetricTypeIP:
		return entity.IP
	case MetricTypeCosine:
		return entity.COSINE
	default:
		return entity.L2
	}
}

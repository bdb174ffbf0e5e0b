package milvus

import (
	"context"

	"github.com/milvus-io/milvus/client/v2/entity"
	"github.com/milvus-io/milvus/client/v2/milvusclient"
	"go.uber.org/zap"
)

// CreateCollectionOptions Collection 创建选项
type CreateCollectionOptions struct {
	ShardsNum        int32
	ConsistencyLevel string
}

// CreateCollection 创建 Collection
func (c *Client) CreateCollection(ctx context.Context, schema *CollectionSchema, opts *CreateCollectionOptions) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return ErrClientClosed
	}
	if schema == nil {
		return ErrInvalidSchema
	}
	if err := schema.Validate(); err != nil {
		return WrapError("CreateCollection", err, schema.Name, "")
	}

	createOpt := milvusclient.NewCreateCollectionOption(schema.Name, schema.ToEntity())
	if opts != nil {
		if opts.ShardsNum > 0 {
			createOpt.WithShardNum(opts.ShardsNum)
		}
		if opts.ConsistencyLevel != "" {
			createOpt.WithConsistencyLevel(parseConsistencyLevel(opts.ConsistencyLevel))
		}
	}

	err := c.execWithRetry(ctx, "CreateCollection", func(ctx context.Context) error {
		return c.client.CreateCollection(ctx, createOpt)
	})
	if err != nil {
		c.logger.Error("failed to create collection",
			zap.String("collection", schema.Name),
			zap.Error(err))
		return WrapError("CreateCollection", err, schema.Name, "")
	}

	c.logger.Info("collection created", zap.String("collection", schema.Name))
	return nil
}

// DropCollection 删除 Collection
func (c *Client) DropCollection(ctx context.Context, collectionName string) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return ErrClientClosed
	}
	if collectionName == "" {
		return ErrInvalidCollectionName
	}

	err := c.execWithRetry(ctx, "DropCollection", func(ctx context.Context) error {
		return c.client.DropCollection(ctx, milvusclient.NewDropCollectionOption(collectionName))
	})
	if err != nil {
		c.logger.Error("failed to drop collection",
			zap.String("collection", collectionName),
			zap.Error(err))
		return WrapError("DropCollection", err, collectionName, "")
	}

	c.logger.Info("collection dropped", zap.String("collection", collectionName))
	return nil
}

// HasCollection 检查 Collection 是否存在
func (c *Client) HasCollection(ctx context.Context, collectionName string) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return false, ErrClientClosed
	}
	if collectionName == "" {
		return false, ErrInvalidCollectionName
	}

	var exists bool
	err := c.execWithRetry(ctx, "HasCollection", func(ctx context.Context) error {
		var err error
		exists, err = c.client.HasCollection(ctx, milvusclient.NewHasCollectionOption(collectionName))
		return err
	})
	if err != nil {
		return false, WrapError("HasCollection", err, collectionName, "")
	}

	return exists, nil
}

// ListCollections 列出所有 Collection
func (c *Client) ListCollections(ctx context.Context) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, ErrClientClosed
	}

	var collections []string
	err := c.execWithRetry(ctx, "ListCollections", func(ctx context.Context) error {
		result, err := c.client.ListCollections(ctx, milvusclient.NewListCollectionOption())
		if err != nil {
			return err
		}
		collections = result
		return nil
	})
	if err != nil {
		return nil, WrapError("ListCollections", err, "", "")
	}

	return collections, nil
}

// LoadCollection 加载 Collection 到内存
func (c *Client) LoadCollection(ctx context.Context, collectionName string, async bool) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return ErrClientClosed
	}
	if collectionName == "" {
		return ErrInvalidCollectionName
	}

	loadOpt := milvusclient.NewLoadCollectionOption(collectionName)

	err := c.execWithRetry(ctx, "LoadCollection", func(ctx context.Context) error {
		task, err := c.client.LoadCollection(ctx, loadOpt)
		if err != nil {
			return err
		}
		if !async {
			return task.Await(ctx)
		}
		return nil
	})
	if err != nil {
		c.logger.Error("failed to load collection",
			zap.String("collection", collectionName),
			zap.Error(err))
		return WrapError("LoadCollection", err, collectionName, "")
	}

	c.logger.Info("collection loaded",
		zap.String("collection", collectionName),
		zap.Bool("async", async))
	return nil
}

// parseConsistencyLevel 解析一致性级别
func parseConsistencyLevel(level string) entity.ConsistencyLevel {
	switch level {
	case "Strong":
		return entity.ClStrong
	case "Session":
		return entity.ClSession
	case "Bounded":
		return entity.ClBounded
	case "Eventually":
		return entity.ClEventually
	default:
		return entity.ClSession
	}
}

package milvus

import (
	"context"

	"github.com/milvus-io/milvus/client/v2/column"
	"github.com/milvus-io/milvus/client/v2/milvusclient"
	"go.uber.org/zap"
)

// Insert 插入数据
func (c *Client) Insert(ctx context.Context, collectionName string, data []column.Column) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return 0, ErrClientClosed
	}
	if collectionName == "" {
		return 0, ErrInvalidCollectionName
	}
	if len(data) == 0 {
		return 0, ErrInvalidData
	}

	insertOpt := milvusclient.NewColumnBasedInsertOption(collectionName, data...)

	var result milvusclient.InsertResult
	err := c.execWithRetry(ctx, "Insert", func(ctx context.Context) error {
		var err error
		result, err = c.client.Insert(ctx, insertOpt)
		return err
	})
	if err != nil {
		c.logger.Error("failed to insert data",
			zap.String("collection", collectionName),
			zap.Error(err))
		return 0, WrapError("Insert", err, collectionName, "")
	}

	c.logger.Debug("data inserted",
		zap.String("collection", collectionName),
		zap.Int64("count", result.InsertCount))
	return result.InsertCount, nil
}

// Delete 按表达式删除数据
func (c *Client) Delete(ctx context.Context, collectionName, expr string) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return ErrClientClosed
	}
	if collectionName == "" {
		return ErrInvalidCollectionName
	}
	if expr == "" {
		return ErrInvalidExpression
	}

	deleteOpt := milvusclient.NewDeleteOption(collectionName).WithExpr(expr)

	err := c.execWithRetry(ctx, "Delete", func(ctx context.Context) error {
		_, err := c.client.Delete(ctx, deleteOpt)
		return err
	})
	if err != nil {
		c.logger.Error("failed to delete data",
			zap.String("collection", collectionName),
			zap.String("expression", expr),
			zap.Error(err))
		return WrapError("Delete", err, collectionName, "")
	}

	return nil
}

// Flush 刷新数据到持久化存储
func (c *Client) Flush(ctx context.Context, collectionName string, async bool) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return ErrClientClosed
	}
	if collectionName == "" {
		return ErrInvalidCollectionName
	}

	err := c.execWithRetry(ctx, "Flush", func(ctx context.Context) error {
		task, err := c.client.Flush(ctx, milvusclient.NewFlushOption(collectionName))
		if err != nil {
			return err
		}
		if !async {
			return task.Await(ctx)
		}
		return nil
	})
	if err != nil {
		c.logger.Error("failed to flush collection",
			zap.String("collection", collectionName),
			zap.Error(err))
		return WrapError("Flush", err, collectionName, "")
	}

	return nil
}

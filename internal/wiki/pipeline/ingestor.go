package pipeline

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/wikivec/wikivec/internal/pkg/logger"
	"github.com/wikivec/wikivec/internal/pkg/workerpool"
	"github.com/wikivec/wikivec/internal/wiki/loader"
)

// IngestStats 一次导入的汇总统计
type IngestStats struct {
	Total     int64         // 读到的条目总数
	Succeeded int64         // 成功处理数
	Failed    int64         // 处理失败数
	Elapsed   time.Duration // 总耗时
}

// Ingestor 负责流式读取语料并并发调度处理
type Ingestor struct {
	loader    loader.Loader
	processor *Processor
	pool      *workerpool.Pool
	logger    *logger.Logger
}

// NewIngestor 创建导入器
func NewIngestor(ld loader.Loader, processor *Processor, pool *workerpool.Pool, log *logger.Logger) *Ingestor {
	if log == nil {
		log = logger.L()
	}
	return &Ingestor{
		loader:    ld,
		processor: processor,
		pool:      pool,
		logger:    log,
	}
}

// Run 读取语料并逐条提交到工作池，阻塞到所有条目处理完成。
// 单条处理失败只计数不中断，读取或调度失败立即返回。
func (in *Ingestor) Run(ctx context.Context, r io.Reader) (*IngestStats, error) {
	start := time.Now()
	stats := &IngestStats{}

	err := in.loader.Load(ctx, r, func(raw *loader.RawArticle) error {
		atomic.AddInt64(&stats.Total, 1)
		article := raw

		if err := in.pool.Submit(func() {
			if err := in.processor.Process(ctx, article); err != nil {
				atomic.AddInt64(&stats.Failed, 1)
				in.logger.Error("failed to process article",
					zap.String("title", article.Title),
					zap.Error(err))
				return
			}
			atomic.AddInt64(&stats.Succeeded, 1)
		}); err != nil {
			return fmt.Errorf("failed to submit article %q: %w", article.Title, err)
		}
		return nil
	})

	// 已提交的任务要等到全部结束再汇总
	in.pool.Wait()

	stats.Elapsed = time.Since(start)
	if err != nil {
		return stats, err
	}

	in.logger.Info("ingest finished",
		zap.Int64("total", stats.Total),
		zap.Int64("succeeded", stats.Succeeded),
		zap.Int64("failed", stats.Failed),
		zap.Duration("elapsed", stats.Elapsed))

	return stats, nil
}

package workerpool

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
)

var (
	ErrPoolClosed = errors.New("worker pool is closed")
)

// TaskResult 任务结果
type TaskResult struct {
	Data  interface{}
	Error error
}

// Config Worker Pool 配置
type Config struct {
	Workers     int           `mapstructure:"workers" json:"workers"`
	ExpiryDelay time.Duration `mapstructure:"expiry_delay" json:"expiry_delay"`
}

// DefaultConfig 默认配置
func DefaultConfig() *Config {
	return &Config{
		Workers:     8,
		ExpiryDelay: 10 * time.Second,
	}
}

// Validate 校验配置
func (c *Config) Validate() error {
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	return nil
}

// Statistics 统计信息
type Statistics struct {
	mu sync.RWMutex

	Submitted int64
	Completed int64
	Failed    int64
}

func (s *Statistics) incSubmitted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Submitted++
}

func (s *Statistics) incCompleted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Completed++
}

func (s *Statistics) incFailed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Failed++
}

// Get 返回统计快照
func (s *Statistics) Get() Statistics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Statistics{
		Submitted: s.Submitted,
		Completed: s.Completed,
		Failed:    s.Failed,
	}
}

// Pool ants 封装的 Worker Pool
type Pool struct {
	pool   *ants.Pool
	config *Config
	stats  *Statistics

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *zap.Logger
}

// New 创建 Worker Pool
func New(config *Config, logger *zap.Logger) (*Pool, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	antsPool, err := ants.NewPool(config.Workers,
		ants.WithExpiryDuration(config.ExpiryDelay),
		ants.WithPanicHandler(func(v interface{}) {
			logger.Error("worker panic", zap.Any("error", v))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create ants pool: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Pool{
		pool:   antsPool,
		config: config,
		stats:  &Statistics{},
		ctx:    ctx,
		cancel: cancel,
		logger: logger,
	}, nil
}

// Submit 提交任务
func (p *Pool) Submit(task func()) error {
	select {
	case <-p.ctx.Done():
		return ErrPoolClosed
	default:
	}

	p.stats.incSubmitted()
	p.wg.Add(1)

	err := p.pool.Submit(func() {
		defer p.wg.Done()
		task()
		p.stats.incCompleted()
	})
	if err != nil {
		p.wg.Done()
		p.stats.incFailed()
		return fmt.Errorf("failed to submit task: %w", err)
	}

	return nil
}

// SubmitWithResult 提交任务并通过 channel 获取结果
func (p *Pool) SubmitWithResult(task func() (interface{}, error)) <-chan TaskResult {
	resultCh := make(chan TaskResult, 1)

	err := p.Submit(func() {
		data, err := task()
		resultCh <- TaskResult{Data: data, Error: err}
		close(resultCh)
	})
	if err != nil {
		resultCh <- TaskResult{Error: err}
		close(resultCh)
	}

	return resultCh
}

// Wait 等待所有已提交任务完成
func (p *Pool) Wait() {
	p.wg.Wait()
}

// Running 当前运行中的 worker 数
func (p *Pool) Running() int {
	return p.pool.Running()
}

// Stats 返回统计快照
func (p *Pool) Stats() Statistics {
	return p.stats.Get()
}

// Shutdown 等待任务完成后关闭
func (p *Pool) Shutdown() {
	p.cancel()
	p.wg.Wait()
	p.pool.Release()
	p.logger.Info("worker pool shut down",
		zap.Int64("completed", p.stats.Get().Completed),
		zap.Int64("failed", p.stats.Get().Failed))
}

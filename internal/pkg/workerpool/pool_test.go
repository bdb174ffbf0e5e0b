package workerpool

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPool_Submit(t *testing.T) {
	p, err := New(&Config{Workers: 4}, zap.NewNop())
	require.NoError(t, err)
	defer p.Shutdown()

	var counter int64
	for i := 0; i < 100; i++ {
		err := p.Submit(func() {
			atomic.AddInt64(&counter, 1)
		})
		require.NoError(t, err)
	}

	p.Wait()
	assert.Equal(t, int64(100), atomic.LoadInt64(&counter))

	stats := p.Stats()
	assert.Equal(t, int64(100), stats.Submitted)
	assert.Equal(t, int64(100), stats.Completed)
}

func TestPool_SubmitWithResult(t *testing.T) {
	p, err := New(nil, zap.NewNop())
	require.NoError(t, err)
	defer p.Shutdown()

	ch := p.SubmitWithResult(func() (interface{}, error) {
		return 42, nil
	})

	result := <-ch
	require.NoError(t, result.Error)
	assert.Equal(t, 42, result.Data)
}

func TestPool_SubmitAfterShutdown(t *testing.T) {
	p, err := New(&Config{Workers: 2}, zap.NewNop())
	require.NoError(t, err)
	p.Shutdown()

	err = p.Submit(func() {})
	assert.ErrorIs(t, err, ErrPoolClosed)
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	assert.Error(t, (&Config{Workers: 0}).Validate())
	assert.Error(t, (&Config{Workers: -1}).Validate())
}

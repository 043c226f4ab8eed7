package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStartedPool(t *testing.T, config PoolConfig) *Pool {
	t.Helper()
	pool := NewPool(config)
	require.NoError(t, pool.Start())
	t.Cleanup(func() { _ = pool.Stop() })
	return pool
}

func TestNewPool_AppliesDefaults(t *testing.T) {
	pool := NewPool(PoolConfig{})

	assert.Equal(t, 10, pool.MaxWorkers())
	assert.Equal(t, 8*time.Second, pool.TaskTimeout())
	assert.Equal(t, 100, cap(pool.jobQueue))
}

func TestPool_SubmitBeforeStart(t *testing.T) {
	pool := NewPool(DefaultPoolConfig())

	_, err := pool.Submit(context.Background(), func(ctx context.Context) error { return nil })

	assert.ErrorIs(t, err, ErrPoolNotRunning)
}

func TestPool_RunBatch_PreservesErrorOrder(t *testing.T) {
	pool := newStartedPool(t, PoolConfig{MaxWorkers: 4})
	failure := errors.New("lookup failed")

	tasks := make([]TaskFunc, 8)
	for i := range tasks {
		i := i
		tasks[i] = func(ctx context.Context) error {
			// Later tasks finish first
			time.Sleep(time.Duration(8-i) * time.Millisecond)
			if i == 5 {
				return failure
			}
			return nil
		}
	}

	errs := pool.RunBatch(context.Background(), tasks)

	require.Len(t, errs, 8)
	for i, err := range errs {
		if i == 5 {
			assert.ErrorIs(t, err, failure)
		} else {
			assert.NoError(t, err, "task %d", i)
		}
	}
}

func TestPool_LimitsConcurrency(t *testing.T) {
	pool := newStartedPool(t, PoolConfig{MaxWorkers: 3})

	var active, peak int32
	tasks := make([]TaskFunc, 12)
	for i := range tasks {
		tasks[i] = func(ctx context.Context) error {
			n := atomic.AddInt32(&active, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt32(&active, -1)
			return nil
		}
	}

	pool.RunBatch(context.Background(), tasks)

	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(3))
	assert.Greater(t, atomic.LoadInt32(&peak), int32(0))
}

func TestPool_TaskTimeout(t *testing.T) {
	pool := newStartedPool(t, PoolConfig{MaxWorkers: 2, TaskTimeout: 20 * time.Millisecond})

	errs := pool.RunBatch(context.Background(), []TaskFunc{
		func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		},
		func(ctx context.Context) error { return nil },
	})

	assert.ErrorIs(t, errs[0], context.DeadlineExceeded)
	assert.NoError(t, errs[1])
}

func TestPool_RecoversPanics(t *testing.T) {
	pool := newStartedPool(t, PoolConfig{MaxWorkers: 1})

	errs := pool.RunBatch(context.Background(), []TaskFunc{
		func(ctx context.Context) error { panic("boom") },
		func(ctx context.Context) error { return nil },
	})

	require.Error(t, errs[0])
	assert.Contains(t, errs[0].Error(), "boom")
	assert.NoError(t, errs[1])
}

func TestPool_SubmitCancelledContext(t *testing.T) {
	pool := newStartedPool(t, PoolConfig{MaxWorkers: 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	errs := pool.RunBatch(ctx, []TaskFunc{func(ctx context.Context) error { return nil }})

	assert.ErrorIs(t, errs[0], context.Canceled)
}

func TestPool_StopIsIdempotent(t *testing.T) {
	pool := NewPool(PoolConfig{MaxWorkers: 2})
	require.NoError(t, pool.Start())
	require.NoError(t, pool.Start())

	assert.NoError(t, pool.Stop())
	assert.NoError(t, pool.Stop())

	_, err := pool.Submit(context.Background(), func(ctx context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrPoolNotRunning)
	assert.ErrorIs(t, pool.Start(), ErrPoolStopped)
}

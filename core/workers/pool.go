// ABOUTME: Bounded worker pool for concurrent upstream lookups
// ABOUTME: Fixed worker count, buffered task queue and a per-task timeout

package workers

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// TaskFunc is a unit of work run by the pool.
// The context carries the per-task timeout.
type TaskFunc func(ctx context.Context) error

// job is a queued task together with its submitter's context
type job struct {
	ctx  context.Context
	run  TaskFunc
	done chan error
}

// PoolConfig holds configuration for the worker pool
type PoolConfig struct {
	MaxWorkers  int
	QueueSize   int
	TaskTimeout time.Duration
}

// DefaultPoolConfig returns the default worker pool configuration
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		MaxWorkers:  10,
		QueueSize:   100,
		TaskTimeout: 8 * time.Second,
	}
}

// Pool runs tasks on a fixed number of goroutines
type Pool struct {
	jobQueue    chan *job
	maxWorkers  int
	taskTimeout time.Duration
	wg          sync.WaitGroup
	ctx         context.Context
	cancel      context.CancelFunc
	mu          sync.RWMutex
	running     bool
	stopped     bool
}

// NewPool creates a new worker pool. Call Start before submitting tasks.
func NewPool(config PoolConfig) *Pool {
	defaults := DefaultPoolConfig()
	if config.MaxWorkers <= 0 {
		config.MaxWorkers = defaults.MaxWorkers
	}
	if config.QueueSize <= 0 {
		config.QueueSize = defaults.QueueSize
	}
	if config.TaskTimeout <= 0 {
		config.TaskTimeout = defaults.TaskTimeout
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		jobQueue:    make(chan *job, config.QueueSize),
		maxWorkers:  config.MaxWorkers,
		taskTimeout: config.TaskTimeout,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// MaxWorkers returns the concurrency limit
func (p *Pool) MaxWorkers() int {
	return p.maxWorkers
}

// TaskTimeout returns the timeout applied to every task
func (p *Pool) TaskTimeout() time.Duration {
	return p.taskTimeout
}

// Start starts the worker goroutines
func (p *Pool) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return nil
	}
	if p.stopped {
		return ErrPoolStopped
	}

	for i := 0; i < p.maxWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}

	p.running = true
	return nil
}

// Stop stops accepting tasks, fails queued tasks that have not started and
// waits for running tasks to return.
func (p *Pool) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return nil
	}

	p.cancel()
	close(p.jobQueue)
	p.wg.Wait()

	p.running = false
	p.stopped = true
	return nil
}

// Submit queues a task and returns a channel that receives its result.
// It blocks until the task is queued or ctx is done.
func (p *Pool) Submit(ctx context.Context, task TaskFunc) (<-chan error, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.running {
		return nil, ErrPoolNotRunning
	}

	j := &job{ctx: ctx, run: task, done: make(chan error, 1)}
	select {
	case p.jobQueue <- j:
		return j.done, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// RunBatch runs every task on the pool and returns their errors in input order.
// A task that could not be queued reports the submission error in its slot.
func (p *Pool) RunBatch(ctx context.Context, tasks []TaskFunc) []error {
	errs := make([]error, len(tasks))
	pending := make([]<-chan error, len(tasks))

	for i, task := range tasks {
		done, err := p.Submit(ctx, task)
		if err != nil {
			errs[i] = err
			continue
		}
		pending[i] = done
	}

	for i, done := range pending {
		if done != nil {
			errs[i] = <-done
		}
	}
	return errs
}

// worker is the main loop for each worker goroutine
func (p *Pool) worker() {
	defer p.wg.Done()

	for j := range p.jobQueue {
		if p.ctx.Err() != nil {
			j.done <- ErrPoolStopped
			continue
		}
		j.done <- p.execute(j)
	}
}

// execute runs a single job with the per-task timeout, converting panics to errors
func (p *Pool) execute(j *job) (err error) {
	if err := j.ctx.Err(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(j.ctx, p.taskTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()

	return j.run(ctx)
}

// Error definitions
var (
	ErrPoolNotRunning = &PoolError{Message: "worker pool is not running"}
	ErrPoolStopped    = &PoolError{Message: "worker pool has been stopped"}
)

// PoolError represents a worker-pool-specific error
type PoolError struct {
	Message string
}

func (e *PoolError) Error() string {
	return e.Message
}

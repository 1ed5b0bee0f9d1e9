// Package tasks runs deferred engine loads on a bounded worker pool with
// retry on transient transport failures.
package tasks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"eveuniverse/internal/shared/config"
	"eveuniverse/internal/shared/errors"
	"eveuniverse/internal/shared/goroutine"
	"eveuniverse/internal/shared/logger"
	"eveuniverse/internal/universe/engine"
)

const (
	defaultWorkers   = 4
	defaultTimeLimit = 7200 * time.Second
	queueCapacity    = 4096
)

// Runner is the engine's task runtime. Tasks run on a fixed pool of
// workers; transient failures are retried with growing backoff, anything
// else is logged and dropped.
type Runner struct {
	engine  *engine.Engine
	log     logger.Interface
	queue   chan engine.Task
	workers int
	timeout time.Duration
	backoff []time.Duration

	wg      sync.WaitGroup
	started bool
	stopped bool
	done    chan struct{}
	mu      sync.Mutex
	cancel  context.CancelFunc
}

// NewRunner creates a runner sized from config. Call Start before
// submitting.
func NewRunner(eng *engine.Engine, cfg *config.UniverseConfig, log logger.Interface) *Runner {
	workers := cfg.TaskWorkers
	if workers <= 0 {
		workers = defaultWorkers
	}
	timeout := time.Duration(cfg.TasksTimeLimit) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeLimit
	}
	return &Runner{
		engine:  eng,
		log:     log.Named("tasks"),
		queue:   make(chan engine.Task, queueCapacity),
		workers: workers,
		timeout: timeout,
		done:    make(chan struct{}),
		backoff: []time.Duration{30 * time.Second, 60 * time.Second, 120 * time.Second},
	}
}

// Start launches the worker pool. The pool runs until Stop or until the
// given context is cancelled.
func (r *Runner) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started {
		return
	}
	ctx, r.cancel = context.WithCancel(ctx)
	r.started = true
	for i := 0; i < r.workers; i++ {
		r.wg.Add(1)
		name := fmt.Sprintf("task-worker-%d", i)
		goroutine.SafeGo(r.log, name, func() {
			defer r.wg.Done()
			r.work(ctx)
		})
	}
	r.log.Infow("task runner started", "workers", r.workers, "timeout", r.timeout)
}

// Stop cancels the workers and waits for in-flight tasks to finish.
// Queued tasks that have not started are dropped, and later submissions
// are rejected.
func (r *Runner) Stop() {
	r.mu.Lock()
	cancel := r.cancel
	if !r.stopped {
		r.stopped = true
		close(r.done)
	}
	r.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	r.wg.Wait()
}

// Submit enqueues one task. It blocks while the queue is full and fails
// when the caller's context ends first, the runner was never started, or
// the runner has been stopped.
func (r *Runner) Submit(ctx context.Context, task engine.Task) error {
	r.mu.Lock()
	started, stopped := r.started, r.stopped
	r.mu.Unlock()
	if !started || stopped {
		return errors.NewConfigurationError("task runner not running")
	}
	select {
	case r.queue <- task:
		return nil
	case <-r.done:
		return errors.NewConfigurationError("task runner not running")
	case <-ctx.Done():
		return errors.NewTransportTransientError("task submission cancelled", ctx.Err().Error())
	}
}

func (r *Runner) work(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case task := <-r.queue:
			r.execute(ctx, task)
		}
	}
}

// execute runs one task to completion, retrying transient transport
// failures with backoff. Permanent failures are logged and dropped so one
// bad row cannot wedge a catalogue load.
func (r *Runner) execute(ctx context.Context, task engine.Task) {
	log := r.log.With("type", task.EntityType, "id", task.ID)
	for attempt := 0; ; attempt++ {
		taskCtx, cancel := context.WithTimeout(ctx, r.timeout)
		err := r.engine.Run(taskCtx, task)
		cancel()
		if err == nil {
			return
		}
		if !errors.IsTransportTransientError(err) || attempt >= len(r.backoff) {
			log.Errorw("task failed", "attempt", attempt+1, "error", err)
			return
		}
		wait := r.backoff[attempt]
		log.Warnw("task failed, retrying", "attempt", attempt+1, "backoff", wait, "error", err)
		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
	}
}

package service

import (
	"context"
	"sync"
	"time"

	"github.com/kinkeeper-app/kinkeeper/internal/logger"
)

type flushJob struct {
	flush  FlushService
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
	kick   chan struct{}
}

// NewFlushJob creates a flushJob that drains the mutation queue on a
// ticker. The job is idle until Start is called.
func NewFlushJob(flush FlushService, log *logger.Logger) FlushJob {
	return &flushJob{
		flush:  flush,
		logger: log,
		kick:   make(chan struct{}, 1),
	}
}

// Start implements FlushJob. It stops any previously running job, then
// launches a background goroutine that flushes every interval and whenever
// SyncNow is called. If interval is zero or negative it defaults to
// 2 minutes. The goroutine exits when ctx is cancelled or Stop is called.
func (j *flushJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 2 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.runOnce(jobCtx)
			case <-j.kick:
				j.runOnce(jobCtx)
			}
		}
	}()
}

// SyncNow requests an immediate flush. Non-blocking; a request arriving
// while one is already pending coalesces with it.
func (j *flushJob) SyncNow() {
	select {
	case j.kick <- struct{}{}:
	default:
	}
}

// Stop implements FlushJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the
// job is not running.
func (j *flushJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *flushJob) runOnce(ctx context.Context) {
	if err := j.flush.Flush(ctx); err != nil {
		j.logger.Warn().
			Err(err).
			Str("func", "flushJob.runOnce").
			Msg("background flush failed, entries remain queued")
	}
}

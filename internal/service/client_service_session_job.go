package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/herrerafreebnoapriv-debug/mop-ios/internal/logger"
)

type clientSessionJob struct {
	sessionService ClientSessionService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSessionJob creates a clientSessionJob that calls
// sessionService.CheckAndRefresh on a ticker. The job is idle until Start is
// called.
func NewClientSessionJob(sessionService ClientSessionService) ClientSessionJob {
	return &clientSessionJob{sessionService: sessionService}
}

// Start implements ClientSessionJob. It stops any previously running job, then
// launches a background goroutine that calls CheckAndRefresh every interval.
// If interval is zero or negative it defaults to 5 minutes. The goroutine
// exits when ctx is cancelled, Stop is called or the session is gone.
func (j *clientSessionJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
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
				err := j.sessionService.CheckAndRefresh(jobCtx)
				if errors.Is(err, ErrAuthExpired) {
					// refresh failure is terminal and already reported
					return
				}
				if err != nil {
					logger.FromContext(jobCtx).Warn().Err(err).Msg("session check failed")
				}
			}
		}
	}()
}

// Stop implements ClientSessionJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *clientSessionJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

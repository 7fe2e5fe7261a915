// Package scheduler runs periodic maintenance jobs on cron specs.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"pharmacy-admin-service/pkg/logger"

	"github.com/robfig/cron/v3"
)

// Job is one unit of periodic work
type Job func(ctx context.Context) error

// Scheduler wraps a cron runner. Each run gets its own timeout.
type Scheduler struct {
	cron    *cron.Cron
	timeout time.Duration
}

// New creates a scheduler whose job runs are cancelled after timeout
func New(timeout time.Duration) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger))),
		timeout: timeout,
	}
}

// AddJob registers job under spec, e.g. "@hourly" or "*/5 * * * *".
// Overlapping runs of the same job are skipped.
func (s *Scheduler) AddJob(name, spec string, job Job) error {
	wrapped := cron.NewChain(cron.SkipIfStillRunning(cron.DiscardLogger)).Then(cron.FuncJob(func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		start := time.Now()
		if err := job(ctx); err != nil {
			logger.Error("job %s failed after %s: %v", name, time.Since(start), err)
			return
		}
		logger.Info("job %s finished in %s", name, time.Since(start))
	}))

	if _, err := s.cron.AddJob(spec, wrapped); err != nil {
		return fmt.Errorf("schedule %s with %q: %w", name, spec, err)
	}
	return nil
}

// Len returns the number of registered jobs
func (s *Scheduler) Len() int {
	return len(s.cron.Entries())
}

// Start runs the scheduler in its own goroutine
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops scheduling and waits for running jobs, up to ctx
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		logger.Warning("scheduler stop timed out: %v", ctx.Err())
	}
}

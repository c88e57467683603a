package schedule

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/michy-dev/africa-trends-live/internal/ports"
)

// CronScheduler drives periodic refresh jobs from a cron expression.
type CronScheduler struct {
	spec string
	cron *cron.Cron
	warm sync.WaitGroup
}

var _ ports.Scheduler = (*CronScheduler)(nil)

// NewCronScheduler builds a scheduler configured via cron expression string.
// Descriptors like "@hourly" are accepted alongside standard five-field specs.
func NewCronScheduler(spec string) *CronScheduler {
	return &CronScheduler{spec: spec}
}

// Start registers the job and launches the cron loop. The job also runs once
// immediately so callers never wait a full interval for the first cycle.
func (c *CronScheduler) Start(ctx context.Context, job func(time.Time)) error {
	if job == nil {
		return nil
	}
	if c.cron != nil {
		return nil
	}

	runner := cron.New()
	if _, err := runner.AddFunc(c.spec, func() {
		select {
		case <-ctx.Done():
			return
		default:
		}
		job(time.Now())
	}); err != nil {
		return fmt.Errorf("add cron job %q: %w", c.spec, err)
	}

	c.cron = runner
	runner.Start()

	// The warm run sits outside cron's entry tracking, so Stop joins it
	// separately.
	c.warm.Add(1)
	go func() {
		defer c.warm.Done()
		job(time.Now())
	}()

	go func() {
		<-ctx.Done()
		runner.Stop()
	}()

	return nil
}

// Stop halts the cron loop and waits for running jobs, including the warm
// run, to finish.
func (c *CronScheduler) Stop(ctx context.Context) error {
	if c.cron == nil {
		return nil
	}
	done := c.cron.Stop()
	c.cron = nil

	warmDone := make(chan struct{})
	go func() {
		c.warm.Wait()
		close(warmDone)
	}()

	select {
	case <-done.Done():
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-warmDone:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

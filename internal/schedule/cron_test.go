package schedule

import (
	"context"
	"testing"
	"time"
)

func TestStartRunsJobImmediately(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fired := make(chan time.Time, 1)
	s := NewCronScheduler("@hourly")
	if err := s.Start(ctx, func(ts time.Time) { fired <- ts }); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer s.Stop(context.Background())

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}
}

func TestStartRejectsBadSpec(t *testing.T) {
	t.Parallel()

	s := NewCronScheduler("not a cron spec")
	err := s.Start(context.Background(), func(time.Time) {})
	if err == nil {
		t.Fatal("expected error for invalid spec")
	}
}

func TestStopWaitsForWarmRun(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	started := make(chan struct{})
	release := make(chan struct{})
	var finished bool

	s := NewCronScheduler("@hourly")
	if err := s.Start(ctx, func(time.Time) {
		close(started)
		<-release
		finished = true
	}); err != nil {
		t.Fatalf("start: %v", err)
	}

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("warm run did not start")
	}

	go func() {
		time.Sleep(50 * time.Millisecond)
		close(release)
	}()

	if err := s.Stop(context.Background()); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if !finished {
		t.Fatal("stop returned before the warm run finished")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	t.Parallel()

	s := NewCronScheduler("@hourly")
	if err := s.Stop(context.Background()); err != nil {
		t.Fatalf("stop before start: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := s.Start(ctx, func(time.Time) {}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := s.Stop(context.Background()); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if err := s.Stop(context.Background()); err != nil {
		t.Fatalf("second stop: %v", err)
	}
}

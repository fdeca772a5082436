package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type fakeService struct {
	name     string
	startErr error
	stopped  atomic.Bool
}

func (s *fakeService) Name() string { return s.name }

func (s *fakeService) Start(ctx context.Context) error {
	if s.startErr != nil {
		return s.startErr
	}
	<-ctx.Done()
	return nil
}

func (s *fakeService) Stop(context.Context) error {
	s.stopped.Store(true)
	return nil
}

func TestRunnerStopsAllOnCancel(t *testing.T) {
	a := &fakeService{name: "a"}
	b := &fakeService{name: "b"}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewRunner(a, b).Run(ctx, time.Second, nil) }()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run should return nil after cancel, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("runner did not stop")
	}
	if !a.stopped.Load() || !b.stopped.Load() {
		t.Fatalf("every service should be stopped")
	}
}

func TestRunnerPropagatesStartError(t *testing.T) {
	boom := errors.New("listen failed")
	failing := &fakeService{name: "http", startErr: boom}
	other := &fakeService{name: "worker"}

	err := NewRunner(failing, other).Run(context.Background(), time.Second, nil)
	if !errors.Is(err, boom) {
		t.Fatalf("want start error, got %v", err)
	}
	if !other.stopped.Load() {
		t.Fatalf("other services should be stopped after a failure")
	}
}

func TestRunnerWithoutServices(t *testing.T) {
	if err := NewRunner(nil).Run(context.Background(), time.Second, nil); err == nil {
		t.Fatalf("empty runner should fail")
	}
}

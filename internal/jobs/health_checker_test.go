package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type flakyBackend struct {
	calls atomic.Int32
	fail  atomic.Bool
}

func (b *flakyBackend) Health(ctx context.Context) error {
	b.calls.Add(1)
	if b.fail.Load() {
		return errors.New("connection refused")
	}
	return nil
}

func TestHealthChecker_Check(t *testing.T) {
	b := &flakyBackend{}
	h := NewHealthChecker(b, time.Minute, time.Second)

	h.check(context.Background())
	if !h.healthy {
		t.Error("healthy = false for a healthy backend")
	}

	b.fail.Store(true)
	h.check(context.Background())
	if h.healthy {
		t.Error("healthy not cleared after failure")
	}

	b.fail.Store(false)
	h.check(context.Background())
	if !h.healthy {
		t.Error("checker did not recover")
	}
}

func TestHealthChecker_StartStops(t *testing.T) {
	b := &flakyBackend{}
	h := NewHealthChecker(b, 5*time.Millisecond, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.Start(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Start did not return after cancel")
	}
	if b.calls.Load() < 2 {
		t.Errorf("health checks = %d, want at least 2", b.calls.Load())
	}
}

package backend

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/atomicstack/tmux-workspace/internal/tmux"
)

func withStubFetch(t *testing.T, fn func(string) (tmux.SessionSnapshot, error)) {
	t.Helper()
	prev := fetchSessions
	fetchSessions = fn
	t.Cleanup(func() { fetchSessions = prev })
}

func TestWatcherPublishesSessionSnapshots(t *testing.T) {
	var calls int32
	withStubFetch(t, func(socket string) (tmux.SessionSnapshot, error) {
		atomic.AddInt32(&calls, 1)
		if socket != "sock" {
			t.Errorf("unexpected socket %q", socket)
		}
		return tmux.SessionSnapshot{Current: "work"}, nil
	})

	w := NewWatcher("sock", 10*time.Millisecond)
	select {
	case evt := <-w.Events():
		if evt.Kind != KindSessions || evt.Err != nil {
			t.Fatalf("unexpected event %#v", evt)
		}
		snap, ok := evt.Data.(tmux.SessionSnapshot)
		if !ok || snap.Current != "work" {
			t.Fatalf("unexpected payload %#v", evt.Data)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for first event")
	}
	w.Stop()
	w.Wait()
	for range w.Events() {
	}
	if atomic.LoadInt32(&calls) == 0 {
		t.Fatal("expected at least one fetch")
	}
}

func TestWatcherForwardsErrors(t *testing.T) {
	withStubFetch(t, func(string) (tmux.SessionSnapshot, error) {
		return tmux.SessionSnapshot{}, errors.New("no server")
	})
	w := NewWatcher("", time.Hour)
	defer func() {
		w.Stop()
		w.Wait()
	}()
	evt := <-w.Events()
	if evt.Err == nil || evt.Err.Error() != "no server" {
		t.Fatalf("expected fetch error, got %#v", evt)
	}
}

func TestThrottleSpacesCalls(t *testing.T) {
	th := newThrottle(30 * time.Millisecond)
	ctx := context.Background()
	start := time.Now()
	if !th.wait(ctx) || !th.wait(ctx) {
		t.Fatal("expected both waits to complete")
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Fatalf("expected second wait to be throttled, took %v", elapsed)
	}
	var nilThrottle *throttle
	if !nilThrottle.wait(ctx) {
		t.Fatal("expected nil throttle to pass through")
	}
}

func TestThrottleStopsOnCancel(t *testing.T) {
	th := newThrottle(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	th.wait(ctx)
	cancel()
	start := time.Now()
	if th.wait(ctx) {
		t.Fatal("expected cancelled wait to report false")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("expected cancel to interrupt the wait, took %v", elapsed)
	}
}

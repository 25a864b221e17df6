package backend

import (
	"context"
	"sync"
	"time"
)

// throttle keeps successive session fetches at least interval apart so a
// short poll interval cannot flood the tmux server.
type throttle struct {
	interval time.Duration

	mu   sync.Mutex
	last time.Time
}

func newThrottle(interval time.Duration) *throttle {
	return &throttle{interval: interval}
}

// wait blocks until the next fetch may run. It returns false when ctx ends
// first.
func (t *throttle) wait(ctx context.Context) bool {
	if t == nil || t.interval <= 0 {
		return ctx.Err() == nil
	}
	t.mu.Lock()
	delay := t.interval - time.Since(t.last)
	t.mu.Unlock()
	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return false
		case <-timer.C:
		}
	}
	t.mu.Lock()
	t.last = time.Now()
	t.mu.Unlock()
	return true
}

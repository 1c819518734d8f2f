// Package ratelimit implements a per-key sliding window rate limiter
package ratelimit

import (
	"sync"
	"time"
)

// Limiter answers whether an action keyed by an arbitrary string may proceed
type Limiter interface {
	// Allow records an attempt for key and reports whether it is within the limit
	Allow(key string) bool
}

// Window is a sliding window limiter: at most limit attempts per key within
// the trailing window. Attempts outside the window are forgotten, so a caller
// that waits out the window is admitted again.
type Window struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	now    func() time.Time
	hits   map[string][]time.Time
}

// Option tweaks a Window
type Option func(*Window)

// WithClock overrides the time source, used by tests
func WithClock(now func() time.Time) Option {
	return func(w *Window) { w.now = now }
}

// NewWindow builds a sliding window limiter allowing limit attempts per window
func NewWindow(limit int, window time.Duration, opts ...Option) *Window {
	w := &Window{
		limit:  limit,
		window: window,
		now:    time.Now,
		hits:   make(map[string][]time.Time),
	}
	for _, o := range opts {
		o(w)
	}
	return w
}

// Allow implements Limiter. Denied attempts are not recorded, so a burst of
// rejections does not extend the penalty past the original window.
func (w *Window) Allow(key string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.now()
	cutoff := now.Add(-w.window)

	kept := w.hits[key][:0]
	for _, t := range w.hits[key] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}

	if len(kept) >= w.limit {
		w.hits[key] = kept
		return false
	}

	w.hits[key] = append(kept, now)
	return true
}

// Prune drops keys whose every attempt has aged out of the window.
// Call periodically from a janitor goroutine if key cardinality is unbounded.
func (w *Window) Prune() {
	w.mu.Lock()
	defer w.mu.Unlock()

	cutoff := w.now().Add(-w.window)
	for k, ts := range w.hits {
		live := false
		for _, t := range ts {
			if t.After(cutoff) {
				live = true
				break
			}
		}
		if !live {
			delete(w.hits, k)
		}
	}
}

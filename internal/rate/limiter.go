package rate

import (
	"sync"
	"time"
)

// WindowLimiter caps how many times a key may act within a fixed window.
// It guards the public parse endpoint, keyed by client address.
type WindowLimiter struct {
	mu        sync.Mutex
	limit     int
	window    time.Duration
	buckets   map[string]*bucket
	nextPrune time.Time
}

type bucket struct {
	resetAt time.Time
	used    int
}

// NewWindowLimiter creates a limiter allowing limit calls per window per key.
func NewWindowLimiter(limit int, window time.Duration) *WindowLimiter {
	return &WindowLimiter{
		limit:     limit,
		window:    window,
		buckets:   make(map[string]*bucket),
		nextPrune: time.Now().Add(window),
	}
}

// Allow reports whether the key may act now and records the call if so.
func (l *WindowLimiter) Allow(key string) bool {
	now := time.Now()
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.window > 0 && now.After(l.nextPrune) {
		l.prune(now)
		l.nextPrune = now.Add(l.window)
	}

	b, ok := l.buckets[key]
	if !ok || now.After(b.resetAt) {
		l.buckets[key] = &bucket{resetAt: now.Add(l.window), used: 1}
		return true
	}
	if b.used >= l.limit {
		return false
	}
	b.used++
	return true
}

func (l *WindowLimiter) prune(now time.Time) {
	for key, b := range l.buckets {
		if now.After(b.resetAt) {
			delete(l.buckets, key)
		}
	}
}

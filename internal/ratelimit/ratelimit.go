// Package ratelimit provides the sliding-window admission control gating
// every outbound call made by the client side. One Limiter instance is shared
// process-wide and injected where needed; tests supply their own clock.
package ratelimit

import (
	"sync"
	"time"
)

// Clock returns the current time. Injectable for tests.
type Clock func() time.Time

// Limiter admits requests while fewer than max timestamps fall inside the
// trailing window. The CanMakeRequest/RecordRequest pair is not atomic; the
// check-then-act race is tolerated because the limiter guards an outbound
// client, not a shared resource.
type Limiter struct {
	mu     sync.Mutex
	max    int
	window time.Duration
	now    Clock
	marcas []time.Time
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(l *Limiter) { l.now = c }
}

// New builds a Limiter admitting max requests per window.
func New(max int, window time.Duration, opts ...Option) *Limiter {
	l := &Limiter{max: max, window: window, now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// CanMakeRequest purges timestamps older than the window and reports whether
// another request fits.
func (l *Limiter) CanMakeRequest() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.purge()
	return len(l.marcas) < l.max
}

// RecordRequest appends the current time to the window.
func (l *Limiter) RecordRequest() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.marcas = append(l.marcas, l.now())
}

// Allow combines the check and the record under one lock. Convenience for
// callers that do not need the split pair.
func (l *Limiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.purge()
	if len(l.marcas) >= l.max {
		return false
	}
	l.marcas = append(l.marcas, l.now())
	return true
}

// purge drops timestamps that fell out of the window. Caller holds the lock.
func (l *Limiter) purge() {
	limite := l.now().Add(-l.window)
	i := 0
	for i < len(l.marcas) && !l.marcas[i].After(limite) {
		i++
	}
	if i > 0 {
		l.marcas = append(l.marcas[:0], l.marcas[i:]...)
	}
}

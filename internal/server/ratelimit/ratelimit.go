// Package ratelimit provides per-client rate limiting using a token bucket.
package ratelimit

import (
	"sync"
	"time"
)

// bucket tracks the token balance for one client.
type bucket struct {
	tokens     float64
	lastRefill time.Time
}

// Info describes the rate limit state returned with each decision.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter applies a single per-minute request budget to each client.
// A zero or negative limit disables limiting entirely.
type Limiter struct {
	limit      int
	refillRate float64 // tokens per second

	mu         sync.Mutex
	buckets    map[string]*bucket
	lastAccess map[string]time.Time

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewLimiter creates a limiter allowing limitPerMinute requests per client.
func NewLimiter(limitPerMinute int) *Limiter {
	l := &Limiter{
		limit:      limitPerMinute,
		refillRate: float64(limitPerMinute) / 60,
		buckets:    make(map[string]*bucket),
		lastAccess: make(map[string]time.Time),
	}

	if limitPerMinute > 0 {
		l.cleanupTicker = time.NewTicker(5 * time.Minute)
		l.cleanupStop = make(chan struct{})
		go l.cleanupLoop()
	}

	return l
}

// Allow reports whether a request from the given client fits its budget,
// consuming a token when it does.
func (l *Limiter) Allow(clientID string) (bool, Info) {
	if l.limit <= 0 {
		return true, Info{Allowed: true}
	}

	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[clientID]
	if !ok {
		b = &bucket{tokens: float64(l.limit), lastRefill: now}
		l.buckets[clientID] = b
	}
	l.lastAccess[clientID] = now

	// Refill based on elapsed time, capped at the full budget.
	elapsed := now.Sub(b.lastRefill).Seconds()
	b.tokens = min(float64(l.limit), b.tokens+elapsed*l.refillRate)
	b.lastRefill = now

	allowed := b.tokens >= 1
	if allowed {
		b.tokens--
	}

	info := Info{
		Allowed:   allowed,
		Limit:     l.limit,
		Remaining: int(b.tokens),
	}
	if b.tokens < float64(l.limit) {
		deficit := float64(l.limit) - b.tokens
		info.ResetTime = now.Add(time.Duration(deficit / l.refillRate * float64(time.Second)))
	} else {
		info.ResetTime = now
	}
	if !allowed {
		wait := (1 - b.tokens) / l.refillRate
		info.RetryAfter = time.Duration(wait * float64(time.Second))
	}

	return allowed, info
}

// cleanupLoop drops buckets idle for over an hour.
func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.cleanupTicker.C:
			cutoff := time.Now().Add(-1 * time.Hour)
			l.mu.Lock()
			for id, last := range l.lastAccess {
				if last.Before(cutoff) {
					delete(l.buckets, id)
					delete(l.lastAccess, id)
				}
			}
			l.mu.Unlock()
		case <-l.cleanupStop:
			return
		}
	}
}

// Stop halts the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
	}
	if l.cleanupStop != nil {
		close(l.cleanupStop)
	}
}

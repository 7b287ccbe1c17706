package handlers

import (
	"strings"
	"sync"
	"time"
)

// rateLimiter throttles repeated requests from the same client, keyed by
// user ID or remote address. The chatbot is the only unauthenticated write
// surface, so it carries one by default.
type rateLimiter interface {
	Allow(key string) bool
}

// windowLimiter counts requests per key inside a fixed window. Stale keys
// are swept opportunistically once enough windows have elapsed, so the map
// stays bounded without a background goroutine.
type windowLimiter struct {
	limit  int
	window time.Duration
	clock  func() time.Time

	mu        sync.Mutex
	buckets   map[string]*windowBucket
	nextSweep time.Time
}

type windowBucket struct {
	hits      int
	expiresAt time.Time
}

func newWindowLimiter(limit int, window time.Duration, clock func() time.Time) rateLimiter {
	if limit <= 0 || window <= 0 {
		return nil
	}
	if clock == nil {
		clock = time.Now
	}
	return &windowLimiter{
		limit:     limit,
		window:    window,
		clock:     clock,
		buckets:   make(map[string]*windowBucket),
		nextSweep: clock().Add(10 * window),
	}
}

func (l *windowLimiter) Allow(key string) bool {
	if l == nil {
		return true
	}
	if key = strings.TrimSpace(key); key == "" {
		key = "anonymous"
	}

	now := l.clock()
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.After(l.nextSweep) {
		l.sweepLocked(now)
	}

	bucket, ok := l.buckets[key]
	if !ok || now.After(bucket.expiresAt) {
		l.buckets[key] = &windowBucket{hits: 1, expiresAt: now.Add(l.window)}
		return true
	}
	if bucket.hits >= l.limit {
		return false
	}
	bucket.hits++
	return true
}

func (l *windowLimiter) sweepLocked(now time.Time) {
	for key, bucket := range l.buckets {
		if now.After(bucket.expiresAt) {
			delete(l.buckets, key)
		}
	}
	l.nextSweep = now.Add(10 * l.window)
}

package ratelimit

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/time/rate"
)

// Limit is a token bucket: RequestsPerSecond refill with Burst capacity.
type Limit struct {
	RequestsPerSecond float64
	Burst             int
}

// DefaultLimit matches the Amadeus self-service test tier.
func DefaultLimit() Limit {
	return Limit{
		RequestsPerSecond: 10,
		Burst:             1,
	}
}

// Limiter throttles outgoing calls per provider. A nil *Limiter never
// blocks.
type Limiter struct {
	mu       sync.RWMutex
	buckets  map[string]*rate.Limiter
	fallback Limit
}

func New(fallback Limit) *Limiter {
	if fallback.RequestsPerSecond <= 0 {
		fallback = DefaultLimit()
	}
	if fallback.Burst <= 0 {
		fallback.Burst = 1
	}
	return &Limiter{
		buckets:  make(map[string]*rate.Limiter),
		fallback: fallback,
	}
}

// Set replaces the bucket for provider.
func (l *Limiter) Set(provider string, limit Limit) {
	if limit.RequestsPerSecond <= 0 {
		limit.RequestsPerSecond = l.fallback.RequestsPerSecond
	}
	if limit.Burst <= 0 {
		limit.Burst = 1
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.buckets[provider] = rate.NewLimiter(rate.Limit(limit.RequestsPerSecond), limit.Burst)
}

func (l *Limiter) bucket(provider string) *rate.Limiter {
	l.mu.RLock()
	b, ok := l.buckets[provider]
	l.mu.RUnlock()
	if ok {
		return b
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok = l.buckets[provider]; ok {
		return b
	}
	b = rate.NewLimiter(rate.Limit(l.fallback.RequestsPerSecond), l.fallback.Burst)
	l.buckets[provider] = b
	return b
}

// Wait blocks until provider may send another request or ctx ends.
func (l *Limiter) Wait(ctx context.Context, provider string) error {
	if l == nil {
		return nil
	}
	if err := l.bucket(provider).Wait(ctx); err != nil {
		return fmt.Errorf("rate limit %s: %w", provider, err)
	}
	return nil
}

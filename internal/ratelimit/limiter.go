// Package ratelimit throttles this service's own outbound traffic. Inbound
// requests are limited separately by echo's rate limiter middleware.
package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// Upstream names used as limiter keys. The Duffel place search is called once
// per autocomplete keystroke; the airports dataset is a large static file that
// should be fetched at most a few times a day.
const (
	UpstreamDuffel   = "duffel"
	UpstreamAirports = "airports-dataset"
)

// UpstreamLimiter holds one token bucket per upstream. Buckets are created on
// first use with the default limit unless SetLimit configured that upstream.
type UpstreamLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	defaults Limit
}

// Limit is a token bucket shape: sustained rate and burst.
type Limit struct {
	RequestsPerSecond float64
	BurstSize         int
}

func DefaultLimit() Limit {
	return Limit{
		RequestsPerSecond: 5,
		BurstSize:         10,
	}
}

func New(defaults Limit) *UpstreamLimiter {
	return &UpstreamLimiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: defaults,
	}
}

func NewWithDefaults() *UpstreamLimiter {
	return New(DefaultLimit())
}

func (u *UpstreamLimiter) limiter(upstream string) *rate.Limiter {
	u.mu.RLock()
	l, ok := u.limiters[upstream]
	u.mu.RUnlock()
	if ok {
		return l
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if l, ok = u.limiters[upstream]; ok {
		return l
	}
	l = rate.NewLimiter(rate.Limit(u.defaults.RequestsPerSecond), u.defaults.BurstSize)
	u.limiters[upstream] = l
	return l
}

// SetLimit replaces the bucket for upstream; tokens already spent are forgotten.
func (u *UpstreamLimiter) SetLimit(upstream string, rps float64, burst int) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.limiters[upstream] = rate.NewLimiter(rate.Limit(rps), burst)
}

// Wait blocks until the upstream has budget or ctx is done. A nil limiter never
// blocks, so clients built in tests or one-off tools can skip throttling.
func (u *UpstreamLimiter) Wait(ctx context.Context, upstream string) error {
	if u == nil {
		return nil
	}
	return u.limiter(upstream).Wait(ctx)
}

// Package rate_limiter paces outbound requests to external services.
// The bibliographic upstream asks clients to leave a gap between
// queries, so each host gets one request slot per configured interval.
package rate_limiter

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// HostRateLimiter hands out request slots per host. A host's first
// request passes immediately; later ones wait out the interval.
type HostRateLimiter struct {
	mu       sync.Mutex
	interval time.Duration
	hosts    map[string]*rate.Limiter
}

func NewHostRateLimiter(interval time.Duration) *HostRateLimiter {
	return &HostRateLimiter{
		interval: interval,
		hosts:    make(map[string]*rate.Limiter),
	}
}

// WaitForHost blocks until the target host's next request slot opens
// or ctx ends. The host is taken from the request URL so every caller
// hitting the same upstream shares one budget.
func (l *HostRateLimiter) WaitForHost(ctx context.Context, rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}
	if parsed.Host == "" {
		return fmt.Errorf("rate limiter: url %q has no host", rawURL)
	}

	return l.limiterFor(parsed.Host).Wait(ctx)
}

func (l *HostRateLimiter) limiterFor(host string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.hosts[host]
	if !ok {
		lim = rate.NewLimiter(rate.Every(l.interval), 1)
		l.hosts[host] = lim
	}
	return lim
}

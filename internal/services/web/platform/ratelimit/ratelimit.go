// Package ratelimit throttles requests per client with token buckets.
package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultMaxKeys bounds how many clients are tracked before the registry
// starts over.
const DefaultMaxKeys = 10000

// Config sets the bucket refill interval and burst size per client.
type Config struct {
	Every   time.Duration
	Burst   int
	MaxKeys int
}

// Registry keeps one limiter per client key.
type Registry struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
	maxKeys  int
}

// New returns a registry for cfg. A non-positive Every or Burst disables
// throttling and every Allow call succeeds.
func New(cfg Config) *Registry {
	r := &Registry{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Inf,
		burst:    cfg.Burst,
		maxKeys:  cfg.MaxKeys,
	}
	if cfg.Every > 0 && cfg.Burst > 0 {
		r.limit = rate.Every(cfg.Every)
	}
	if r.maxKeys <= 0 {
		r.maxKeys = DefaultMaxKeys
	}
	return r
}

// Allow reports whether key may proceed now.
func (r *Registry) Allow(key string) bool {
	if r == nil || r.limit == rate.Inf {
		return true
	}
	return r.getOrCreate(key).Allow()
}

// AllowRequest applies Allow to the client address of req.
func (r *Registry) AllowRequest(req *http.Request) bool {
	return r.Allow(ClientKey(req))
}

// Len returns the number of tracked clients.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.limiters)
}

func (r *Registry) getOrCreate(key string) *rate.Limiter {
	r.mu.RLock()
	limiter, exists := r.limiters[key]
	r.mu.RUnlock()
	if exists {
		return limiter
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if limiter, exists := r.limiters[key]; exists {
		return limiter
	}
	if len(r.limiters) >= r.maxKeys {
		r.limiters = make(map[string]*rate.Limiter)
	}
	limiter = rate.NewLimiter(r.limit, r.burst)
	r.limiters[key] = limiter
	return limiter
}

// ClientKey returns the remote host of req without its port.
func ClientKey(req *http.Request) string {
	if req == nil {
		return ""
	}
	addr := strings.TrimSpace(req.RemoteAddr)
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}

// Package ratelimit is a single-process fixed-window limiter keyed by caller
// identity and route. Counters live in memory, so several replicas each
// enforce their own limits; a shared limit needs a shared counter store.
package ratelimit

import (
	"context"
	"math"
	"sync"
	"time"
)

// Class groups routes that share a limit.
type Class string

const (
	ClassAI       Class = "ai"
	ClassExport   Class = "export"
	ClassMutation Class = "mutation"
	ClassRead     Class = "read"
)

// Rule allows Max requests per Window.
type Rule struct {
	Window time.Duration
	Max    int
}

// DefaultRules returns the stock per-class limits.
func DefaultRules() map[Class]Rule {
	return map[Class]Rule{
		ClassAI:       {Window: time.Minute, Max: 10},
		ClassExport:   {Window: time.Minute, Max: 5},
		ClassMutation: {Window: time.Minute, Max: 30},
		ClassRead:     {Window: time.Minute, Max: 100},
	}
}

type Route struct {
	Path  string
	Class Class
}

// Decision is the outcome of one Allow call. For a class without a rule,
// Allowed is true and the remaining fields are zero.
type Decision struct {
	Allowed           bool
	RetryAfterSeconds int
	Limit             int
	Remaining         int
	WindowStart       time.Time
	ResetAt           time.Time
}

type counter struct {
	count       int
	windowStart time.Time
	resetAt     time.Time
}

type Limiter struct {
	mu       sync.Mutex
	rules    map[Class]Rule
	counters map[string]*counter
	now      func() time.Time
}

type Option func(*Limiter)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		l.now = now
	}
}

func New(rules map[Class]Rule, opts ...Option) *Limiter {
	l := &Limiter{
		rules:    make(map[Class]Rule, len(rules)),
		counters: make(map[string]*counter),
		now:      time.Now,
	}
	for class, rule := range rules {
		l.rules[class] = rule
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Allow counts one request from identity on route. The first request opens
// a window ending Window later; requests past Max in that window are
// rejected until it ends. An expired window is replaced on the next request.
func (l *Limiter) Allow(identity string, route Route) Decision {
	rule, ok := l.rules[route.Class]
	if !ok || rule.Max <= 0 {
		return Decision{Allowed: true}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	key := identity + ":" + route.Path
	c, ok := l.counters[key]
	if !ok || !now.Before(c.resetAt) {
		c = &counter{windowStart: now, resetAt: now.Add(rule.Window)}
		l.counters[key] = c
	}

	d := Decision{
		Limit:       rule.Max,
		WindowStart: c.windowStart,
		ResetAt:     c.resetAt,
	}
	if c.count >= rule.Max {
		d.RetryAfterSeconds = retryAfter(c.resetAt.Sub(now))
		return d
	}

	c.count++
	d.Allowed = true
	d.Remaining = rule.Max - c.count
	return d
}

func retryAfter(remaining time.Duration) int {
	secs := int(math.Ceil(remaining.Seconds()))
	if secs < 1 {
		return 1
	}
	return secs
}

// Sweep drops expired counters and returns how many were removed.
func (l *Limiter) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	removed := 0
	for key, c := range l.counters {
		if !now.Before(c.resetAt) {
			delete(l.counters, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of live counters.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.counters)
}

// Run sweeps every interval until ctx is done.
func (l *Limiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Sweep()
		}
	}
}

// Package ratelimit throttles how often the rating-search engine's
// progress callback fires during a long run. Grounded in the teacher's
// hand-rolled SMSRateLimiter, rebuilt on golang.org/x/time/rate's
// token bucket instead of a mutex-guarded timestamp slice.
package ratelimit

import (
	"golang.org/x/time/rate"
)

// Limiter wraps a token-bucket limiter sized to hz events per second
// with a burst of one, matching "don't flood the caller" rather than
// "allow occasional bursts".
type Limiter struct {
	rl *rate.Limiter
}

// New creates a Limiter allowing at most hz callback invocations per
// second. hz <= 0 means unlimited.
func New(hz float64) *Limiter {
	if hz <= 0 {
		return &Limiter{rl: nil}
	}
	return &Limiter{rl: rate.NewLimiter(rate.Limit(hz), 1)}
}

// Allow reports whether a progress callback may fire right now,
// consuming a token if so. Never blocks: a rating-search step that
// can't report progress this tick just skips the callback rather than
// stalling the simulation.
func (l *Limiter) Allow() bool {
	if l == nil || l.rl == nil {
		return true
	}
	return l.rl.Allow()
}

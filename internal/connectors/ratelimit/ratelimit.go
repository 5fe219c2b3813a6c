// Package ratelimit implements the fixed post-call hold each connector
// applies after every upstream request.
package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Limiter applies a fixed hold after each request, plus an optional
// run-wide ceiling checked before each request.
// There is no backoff, no jitter and no adaptation to server load.
type Limiter struct {
	delay   time.Duration
	ceiling *rate.Limiter // Shared across connectors, may be nil
}

// New creates a limiter with the given post-call delay.
// ceiling may be nil to disable the run-wide cap.
func New(delay time.Duration, ceiling *rate.Limiter) *Limiter {
	if delay < 0 {
		delay = 0
	}
	return &Limiter{
		delay:   delay,
		ceiling: ceiling,
	}
}

// NewCeiling creates a run-wide request ceiling.
// Returns nil when requestsPerSecond is not positive.
func NewCeiling(requestsPerSecond float64) *rate.Limiter {
	if requestsPerSecond <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(requestsPerSecond), 1)
}

// Delay returns the configured post-call delay.
func (l *Limiter) Delay() time.Duration {
	return l.delay
}

// Acquire blocks until the run-wide ceiling allows another request.
func (l *Limiter) Acquire(ctx context.Context) error {
	if l.ceiling == nil {
		return ctx.Err()
	}
	return l.ceiling.Wait(ctx)
}

// Hold blocks for the fixed delay. It returns early only if ctx is done.
func (l *Limiter) Hold(ctx context.Context) error {
	if l.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(l.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

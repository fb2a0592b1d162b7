// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter is a sliding-window log kept in process memory.
//
// # Concurrency
//
// A single mutex serializes Allow and Sweep; the critical section only touches
// one key's timestamps.
type MemoryLimiter struct {
	policy Policy
	now    func() time.Time

	mu   sync.Mutex
	logs map[string][]time.Time
}

// NewMemoryLimiter creates a MemoryLimiter for policy.
func NewMemoryLimiter(policy Policy) *MemoryLimiter {
	return &MemoryLimiter{
		policy: policy,
		now:    time.Now,
		logs:   make(map[string][]time.Time),
	}
}

// WithClock replaces the time source. Tests use it to move time by hand.
func (limiter *MemoryLimiter) WithClock(now func() time.Time) *MemoryLimiter {
	limiter.now = now
	return limiter
}

// Policy implements [Limiter].
func (limiter *MemoryLimiter) Policy() Policy {
	return limiter.policy
}

// Allow implements [Limiter].
func (limiter *MemoryLimiter) Allow(_ context.Context, key string) (Decision, error) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	now := limiter.now()
	log := prune(limiter.logs[key], now.Add(-limiter.policy.Window))

	decision := Decision{Limit: limiter.policy.Max}

	if len(log) >= limiter.policy.Max {
		// The oldest timestamp is the next one to leave the window.
		decision.ResetAt = log[0].Add(limiter.policy.Window)
		decision.RetryAfter = decision.ResetAt.Sub(now)
		limiter.logs[key] = log
		return decision, nil
	}

	log = append(log, now)
	limiter.logs[key] = log

	decision.Allowed = true
	decision.Remaining = limiter.policy.Max - len(log)
	decision.ResetAt = log[0].Add(limiter.policy.Window)
	return decision, nil
}

// Sweep drops keys whose every timestamp has left the window.
func (limiter *MemoryLimiter) Sweep() {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	cutoff := limiter.now().Add(-limiter.policy.Window)
	for key, log := range limiter.logs {
		if remaining := prune(log, cutoff); len(remaining) == 0 {
			delete(limiter.logs, key)
		} else {
			limiter.logs[key] = remaining
		}
	}
}

// Run sweeps on every tick until ctx is cancelled.
func (limiter *MemoryLimiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			limiter.Sweep()
		case <-ctx.Done():
			return
		}
	}
}

// Keys returns the number of tracked client keys.
func (limiter *MemoryLimiter) Keys() int {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	return len(limiter.logs)
}

// prune drops timestamps at or before cutoff. log is sorted ascending.
func prune(log []time.Time, cutoff time.Time) []time.Time {
	first := 0
	for first < len(log) && !log[first].After(cutoff) {
		first++
	}
	if first == 0 {
		return log
	}
	return append(log[:0:0], log[first:]...)
}

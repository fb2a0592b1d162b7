// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package ratelimit counts requests per client key over a sliding window.

Two tiers run side by side, each with its own [Policy]:

  - general: every request.
  - sensitive: mutating routes and login, in addition to the general tier.

Implementations:

  - [MemoryLimiter]: in-process log of request timestamps, guarded by a mutex.
  - [RedisLimiter]: the same algorithm in a Lua script over a sorted set, shared
    by every API instance.

Both record a request and decide on it in one atomic step, so concurrent bursts
on the same key cannot be undercounted.
*/
package ratelimit

import (
	"context"
	"time"
)

// Policy is one tier's ceiling.
type Policy struct {
	// Name namespaces the keys of the tier ("general", "sensitive").
	Name   string
	Window time.Duration
	Max    int
}

// Decision is the verdict for a single request.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	// RetryAfter is how long until the oldest counted request leaves the window.
	// It is zero when the request is allowed.
	RetryAfter time.Duration
	ResetAt    time.Time
}

// Limiter decides whether the request identified by key fits in the window.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
	Policy() Policy
}

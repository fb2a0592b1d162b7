// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/grandline/internal/platform/constants"
)

// slidingWindow trims the set, counts what is left and records the request
// only when it fits. Scores are unix milliseconds.
//
// Returns {allowed, count, oldest score}.
var slidingWindow = redis.NewScript(`
local key    = KEYS[1]
local now    = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit  = tonumber(ARGV[3])

redis.call('ZREMRANGEBYSCORE', key, 0, now - window)
local count = redis.call('ZCARD', key)

if count >= limit then
	local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
	return {0, count, tonumber(oldest[2])}
end

redis.call('ZADD', key, now, ARGV[4])
redis.call('PEXPIRE', key, window)

local first = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
return {1, count + 1, tonumber(first[2])}
`)

// RedisLimiter is a sliding-window log kept in one Redis sorted set per key.
type RedisLimiter struct {
	client redis.Scripter
	policy Policy
	now    func() time.Time
}

// NewRedisLimiter creates a RedisLimiter for policy.
func NewRedisLimiter(client redis.Scripter, policy Policy) *RedisLimiter {
	return &RedisLimiter{client: client, policy: policy, now: time.Now}
}

// Policy implements [Limiter].
func (limiter *RedisLimiter) Policy() Policy {
	return limiter.policy
}

// Allow implements [Limiter].
func (limiter *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	now := limiter.now()

	result, err := slidingWindow.Run(ctx, limiter.client,
		[]string{limiter.Key(key)},
		now.UnixMilli(),
		limiter.policy.Window.Milliseconds(),
		limiter.policy.Max,
		// Members must be unique or two requests in the same millisecond collapse.
		fmt.Sprintf("%d-%s", now.UnixNano(), uuid.NewString()),
	).Int64Slice()
	if err != nil {
		return Decision{}, fmt.Errorf("ratelimit: redis window: %w", err)
	}
	if len(result) != 3 {
		return Decision{}, fmt.Errorf("ratelimit: unexpected script reply %v", result)
	}

	resetAt := time.UnixMilli(result[2]).Add(limiter.policy.Window)
	decision := Decision{
		Allowed: result[0] == 1,
		Limit:   limiter.policy.Max,
		ResetAt: resetAt,
	}

	if decision.Allowed {
		decision.Remaining = max(limiter.policy.Max-int(result[1]), 0)
	} else {
		decision.RetryAfter = max(resetAt.Sub(now), 0)
	}

	return decision, nil
}

// Key returns the Redis key holding the window of a client key.
func (limiter *RedisLimiter) Key(key string) string {
	return constants.RedisPrefixRateLimit + limiter.policy.Name + ":" + key
}

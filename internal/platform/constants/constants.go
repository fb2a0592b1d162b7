// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, header names and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Headers: Canonical names of the headers read or written by middleware.
  - Rate Limiting: Key prefixes and cleanup intervals of the limiter stores.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "grandline"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second

	// StartupTimeout bounds connecting to dependencies at boot.
	StartupTimeout = 30 * time.Second
)

// # Headers

const (
	HeaderXRequestID     = "X-Request-ID"
	HeaderXRealIP        = "X-Real-IP"
	HeaderXForwardedFor  = "X-Forwarded-For"
	HeaderOrigin         = "Origin"
	HeaderAuthorization  = "Authorization"
	HeaderRetryAfter     = "Retry-After"
	HeaderRateLimit      = "X-RateLimit-Limit"
	HeaderRateRemaining  = "X-RateLimit-Remaining"
	HeaderRateLimitReset = "X-RateLimit-Reset"
)

// # Rate Limiting

const (
	// RateLimitCleanupInterval is how often idle in-memory windows are dropped.
	RateLimitCleanupInterval = 1 * time.Minute

	// RedisPrefixRateLimit namespaces the sorted sets holding request timestamps.
	RedisPrefixRateLimit = "grandline:ratelimit:"

	// RateLimitWarnInterval throttles "rate_limit_exceeded" log lines.
	RateLimitWarnInterval = 10 * time.Second
)

// # Authentication

const (
	// AuthScheme is the only accepted Authorization scheme.
	AuthScheme = "Bearer"

	// DefaultRole is assigned to operator accounts created without an explicit role.
	DefaultRole = "editor"
)

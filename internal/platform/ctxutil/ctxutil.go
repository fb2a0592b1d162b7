// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil stores and reads the per-request values shared by middleware,
// handlers and the response writer.
//
// Keys are unexported, so values can only be attached through this package.
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/grandline/internal/platform/sec"
)

type key uint8

const (
	requestIDKey key = iota
	loggerKey
	claimsKey
	exposeErrorsKey
	clientIPKey
)

// lookup returns the value stored under k, or the zero value of T.
func lookup[T any](ctx context.Context, k key) T {
	value, _ := ctx.Value(k).(T)
	return value
}

// # Request Tracing

// WithRequestID attaches the X-Request-ID correlation value.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// GetRequestID returns the correlation value, or "" outside a request.
func GetRequestID(ctx context.Context) string {
	return lookup[string](ctx, requestIDKey)
}

// # Client Address

// WithClientIP attaches the client address resolved from the socket peer and trusted proxies.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}

// GetClientIP returns the resolved client address, or "" when none was attached.
func GetClientIP(ctx context.Context) string {
	return lookup[string](ctx, clientIPKey)
}

// # Structured Logging

// WithLogger attaches the request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request-scoped logger, falling back to [slog.Default].
func GetLogger(ctx context.Context) *slog.Logger {
	if logger := lookup[*slog.Logger](ctx, loggerKey); logger != nil {
		return logger
	}
	return slog.Default()
}

// # Credentials

// WithClaims attaches the claims of a verified access token.
func WithClaims(ctx context.Context, claims *sec.AuthClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// GetClaims returns the verified claims, or nil on unauthenticated requests.
func GetClaims(ctx context.Context) *sec.AuthClaims {
	return lookup[*sec.AuthClaims](ctx, claimsKey)
}

// # Error Exposure

// WithExposeErrors marks the context so internal error causes are written to clients.
func WithExposeErrors(ctx context.Context, expose bool) context.Context {
	return context.WithValue(ctx, exposeErrorsKey, expose)
}

// ExposeErrors reports whether internal error causes may be shown to the client.
func ExposeErrors(ctx context.Context) bool {
	return lookup[bool](ctx, exposeErrorsKey)
}

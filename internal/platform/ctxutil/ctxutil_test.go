// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/grandline/internal/platform/ctxutil"
	"github.com/taibuivan/grandline/internal/platform/sec"
)

/*
TestContext_ZeroValues verifies what a bare context reports.
*/
func TestContext_ZeroValues(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, ctxutil.GetRequestID(ctx))
	assert.Nil(t, ctxutil.GetClaims(ctx))
	assert.False(t, ctxutil.ExposeErrors(ctx))
	assert.Empty(t, ctxutil.GetClientIP(ctx))
	assert.Same(t, slog.Default(), ctxutil.GetLogger(ctx))

	// A nil logger is treated as absent.
	assert.Same(t, slog.Default(), ctxutil.GetLogger(ctxutil.WithLogger(ctx, nil)))
}

/*
TestContext_RoundTrip verifies that every value survives layering on one context.
*/
func TestContext_RoundTrip(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	claims := &sec.AuthClaims{UserID: 7, Username: "robin", Role: "editor"}

	ctx := context.Background()
	ctx = ctxutil.WithRequestID(ctx, "req-42")
	ctx = ctxutil.WithLogger(ctx, logger)
	ctx = ctxutil.WithClaims(ctx, claims)
	ctx = ctxutil.WithExposeErrors(ctx, true)
	ctx = ctxutil.WithClientIP(ctx, "203.0.113.9")

	assert.Equal(t, "req-42", ctxutil.GetRequestID(ctx))
	assert.Same(t, logger, ctxutil.GetLogger(ctx))
	assert.Same(t, claims, ctxutil.GetClaims(ctx))
	assert.True(t, ctxutil.ExposeErrors(ctx))
	assert.Equal(t, "203.0.113.9", ctxutil.GetClientIP(ctx))

	assert.False(t, ctxutil.ExposeErrors(ctxutil.WithExposeErrors(ctx, false)))
}

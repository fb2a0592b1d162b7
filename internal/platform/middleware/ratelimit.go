// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/taibuivan/grandline/internal/platform/apperr"
	"github.com/taibuivan/grandline/internal/platform/constants"
	"github.com/taibuivan/grandline/internal/platform/ctxutil"
	"github.com/taibuivan/grandline/internal/platform/metrics"
	"github.com/taibuivan/grandline/internal/platform/ratelimit"
	"github.com/taibuivan/grandline/internal/platform/respond"
)

// RateLimit refuses requests above the limiter's ceiling with 429 RATE_LIMITED.
//
// Clients are keyed by [RealIP]. Every response carries the X-RateLimit-*
// headers of the tier; refusals add Retry-After in whole seconds.
//
// When the limiter store fails (Redis unreachable) the request is let through
// and the failure is logged.
func RateLimit(limiter ratelimit.Limiter) func(http.Handler) http.Handler {
	tier := limiter.Policy().Name

	// A flood of refusals would otherwise flood the log as well.
	exceeded := &rate.Sometimes{First: 1, Interval: constants.RateLimitWarnInterval}
	unavailable := &rate.Sometimes{First: 1, Interval: constants.RateLimitWarnInterval}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ctx := request.Context()
			clientKey := RealIP(request)

			decision, err := limiter.Allow(ctx, clientKey)
			if err != nil {
				unavailable.Do(func() {
					ctxutil.GetLogger(ctx).WarnContext(ctx, "rate_limit_unavailable",
						slog.String("tier", tier),
						slog.Any("error", err),
					)
				})
				next.ServeHTTP(writer, request)
				return
			}

			header := writer.Header()
			header.Set(constants.HeaderRateLimit, strconv.Itoa(decision.Limit))
			header.Set(constants.HeaderRateRemaining, strconv.Itoa(decision.Remaining))
			header.Set(constants.HeaderRateLimitReset, strconv.FormatInt(decision.ResetAt.Unix(), 10))

			if !decision.Allowed {
				retryAfter := max(int(math.Ceil(decision.RetryAfter.Seconds())), 1)
				header.Set(constants.HeaderRetryAfter, strconv.Itoa(retryAfter))

				metrics.RateLimited(tier)
				exceeded.Do(func() {
					ctxutil.GetLogger(ctx).WarnContext(ctx, "rate_limit_exceeded",
						slog.String("tier", tier),
						slog.String("client", clientKey),
						slog.Int("retry_after_s", retryAfter),
					)
				})

				respond.Error(writer, request, apperr.RateLimited(retryAfter))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net/http"
	"strings"

	"github.com/taibuivan/grandline/internal/platform/apperr"
	"github.com/taibuivan/grandline/internal/platform/constants"
	"github.com/taibuivan/grandline/internal/platform/ctxutil"
	"github.com/taibuivan/grandline/internal/platform/metrics"
	"github.com/taibuivan/grandline/internal/platform/respond"
	"github.com/taibuivan/grandline/internal/platform/sec"
)

// TokenVerifier is the credential primitive used by [Authenticate].
type TokenVerifier interface {
	VerifyToken(token string) (*sec.AuthClaims, error)
}

// Authenticate gates a route behind a bearer access token.
//
// # Flow
//  1. No Authorization header: 401 NO_TOKEN.
//  2. Header not of the form "Bearer <token>": 401 BAD_FORMAT.
//  3. Signature, issuer or expiry rejected by the verifier: 401 INVALID_TOKEN.
//  4. Otherwise the claims are attached to the request context.
//
// The gate holds no session state. It is mounted on mutating routes only.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// 1. Presence
			header := request.Header.Get(constants.HeaderAuthorization)
			if header == "" {
				reject(writer, request, apperr.Unauthorized(apperr.CodeNoToken, "Access denied. No token provided"))
				return
			}

			// 2. Shape
			scheme, token, found := strings.Cut(header, " ")
			if !found || scheme != constants.AuthScheme || token == "" || strings.ContainsAny(token, " \t") {
				reject(writer, request, apperr.Unauthorized(apperr.CodeBadFormat, "Invalid token format. Use: Bearer <token>"))
				return
			}

			// 3. Signature and expiry
			claims, err := verifier.VerifyToken(token)
			if err != nil {
				reject(writer, request, apperr.Unauthorized(apperr.CodeInvalidToken, "Invalid or expired token"))
				return
			}

			// 4. Identity for handlers and the access log
			if holder, ok := request.Context().Value(authHolderKey{}).(*authHolder); ok {
				holder.claims = claims
			}

			next.ServeHTTP(writer, request.WithContext(ctxutil.WithClaims(request.Context(), claims)))
		})
	}
}

func reject(writer http.ResponseWriter, request *http.Request, err *apperr.AppError) {
	metrics.AuthFailed(err.Code)
	respond.Error(writer, request, err)
}

// authHolderKey stores an *authHolder shared between the access log and the gate.
type authHolderKey struct{}

type authHolder struct {
	claims *sec.AuthClaims
}


// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/grandline/internal/platform/ctxutil"
	"github.com/taibuivan/grandline/internal/platform/middleware"
	"github.com/taibuivan/grandline/internal/platform/sec"
)

type stubVerifier struct {
	calls int
}

func (verifier *stubVerifier) VerifyToken(token string) (*sec.AuthClaims, error) {
	verifier.calls++
	if token != "good-token" {
		return nil, sec.ErrInvalidToken
	}
	return &sec.AuthClaims{UserID: 7, Username: "nami", Role: "editor"}, nil
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func decodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) envelope {
	t.Helper()
	var body envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

/*
TestAuthenticate verifies each rejection state of the gate and the happy path.
*/
func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name          string
		header        string
		wantStatus    int
		wantCode      string
		wantVerifies  int
		wantNextCalls int
	}{
		{"missing header", "", http.StatusUnauthorized, "NO_TOKEN", 0, 0},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, "BAD_FORMAT", 0, 0},
		{"lowercase scheme", "bearer good-token", http.StatusUnauthorized, "BAD_FORMAT", 0, 0},
		{"scheme only", "Bearer", http.StatusUnauthorized, "BAD_FORMAT", 0, 0},
		{"extra segment", "Bearer good-token extra", http.StatusUnauthorized, "BAD_FORMAT", 0, 0},
		{"bad signature", "Bearer forged", http.StatusUnauthorized, "INVALID_TOKEN", 1, 0},
		{"valid token", "Bearer good-token", http.StatusOK, "", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := &stubVerifier{}
			nextCalls := 0
			var seen *sec.AuthClaims

			handler := middleware.Authenticate(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalls++
				seen = ctxutil.GetClaims(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			request := httptest.NewRequest(http.MethodPost, "/api/races", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantVerifies, verifier.calls)
			assert.Equal(t, tt.wantNextCalls, nextCalls)

			if tt.wantCode != "" {
				body := decodeEnvelope(t, recorder)
				assert.False(t, body.Success)
				assert.Equal(t, tt.wantCode, body.Error)
			} else {
				require.NotNil(t, seen)
				assert.Equal(t, 7, seen.UserID)
			}
		})
	}
}

/*
TestAuthenticate_VerifierError verifies that verifier errors are never echoed to the client.
*/
func TestAuthenticate_VerifierError(t *testing.T) {
	verifier := verifierFunc(func(string) (*sec.AuthClaims, error) {
		return nil, errors.New("crypto/rsa: verification error")
	})

	handler := middleware.Authenticate(verifier)(http.NotFoundHandler())
	request := httptest.NewRequest(http.MethodDelete, "/api/ships/1", nil)
	request.Header.Set("Authorization", "Bearer x.y.z")
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "crypto/rsa")
}

type verifierFunc func(string) (*sec.AuthClaims, error)

func (fn verifierFunc) VerifyToken(token string) (*sec.AuthClaims, error) { return fn(token) }

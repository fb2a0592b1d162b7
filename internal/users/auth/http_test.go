// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/grandline/internal/platform/middleware"
	"github.com/taibuivan/grandline/internal/platform/sec/sectest"
	"github.com/taibuivan/grandline/internal/users/auth"
)

/*
TestHTTP_LoginThenMe logs in and uses the issued token on the protected profile route.
*/
func TestHTTP_LoginThenMe(t *testing.T) {
	users := &MockUserRepository{}
	tokens := sectest.TokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := auth.NewService(users, tokens, time.Hour, logger)

	zoro := &auth.User{ID: 2, Username: "zoro", PasswordHash: cheapHash(t, "three-swords"), Role: auth.RoleAdmin}
	users.On("FindByUsername", mock.Anything, "zoro").Return(zoro, nil)
	users.On("FindByID", mock.Anything, 2).Return(zoro, nil)

	router := chi.NewRouter()
	router.Mount("/api/auth", auth.NewHandler(service).Routes(nil, chi.Middlewares{middleware.Authenticate(tokens)}))

	// 1. Login
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username": "zoro", "password": "three-swords"}`)))
	require.Equal(t, http.StatusOK, recorder.Code)

	var login struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &login))
	require.NotEmpty(t, login.Data.AccessToken)
	assert.NotContains(t, recorder.Body.String(), "password_hash")

	// 2. Profile
	request := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	request.Header.Set("Authorization", "Bearer "+login.Data.AccessToken)
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"username":"zoro"`)

	// 3. Profile without a token
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

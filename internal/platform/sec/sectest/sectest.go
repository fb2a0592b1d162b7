// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sectest builds real token services for handler tests.
package sectest

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/taibuivan/grandline/internal/platform/sec"
)

// Issuer is the issuer of every test token.
const Issuer = "grandline-test"

// TokenService returns a service signing with a fresh 2048-bit key.
func TokenService(t testing.TB) *sec.TokenService {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	return sec.NewTokenService(key, &key.PublicKey, Issuer)
}

// Bearer returns an Authorization header value for an editor account.
func Bearer(t testing.TB, service *sec.TokenService) string {
	t.Helper()

	token, err := service.GenerateAccessToken(1, "nami", "editor", time.Hour)
	require.NoError(t, err)

	return "Bearer " + token
}

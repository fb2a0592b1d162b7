// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ratelimit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/grandline/internal/platform/ratelimit"
)

/*
TestRedisLimiter_Key verifies the key namespace per tier.
*/
func TestRedisLimiter_Key(t *testing.T) {
	general := ratelimit.NewRedisLimiter(nil, ratelimit.Policy{Name: "general", Window: time.Minute, Max: 1})
	sensitive := ratelimit.NewRedisLimiter(nil, ratelimit.Policy{Name: "sensitive", Window: time.Minute, Max: 1})

	assert.Equal(t, "grandline:ratelimit:general:10.0.0.1", general.Key("10.0.0.1"))
	assert.Equal(t, "grandline:ratelimit:sensitive:10.0.0.1", sensitive.Key("10.0.0.1"))
	assert.Equal(t, "sensitive", sensitive.Policy().Name)
}

/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspect(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	exp := now.Add(15 * time.Minute)

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	info := Inspect(signed, now)
	assert.True(t, info.Present)
	assert.True(t, info.JWT)
	assert.Equal(t, "user-1", info.Subject)
	require.NotNil(t, info.ExpiresAt)
	assert.True(t, exp.Equal(*info.ExpiresAt))
	assert.False(t, info.Expired)

	assert.True(t, Inspect(signed, exp.Add(time.Second)).Expired)

	opaque := Inspect("A1", now)
	assert.True(t, opaque.Present)
	assert.False(t, opaque.JWT)

	assert.False(t, Inspect("", now).Present)
}

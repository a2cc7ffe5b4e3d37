/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package util

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompter(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompterWith(strings.NewReader("\n  ada@example.com \n\nsecret\n+15551234567"), &out, -1)

	email, err := p.Required("Email")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", email)
	assert.Contains(t, out.String(), "Email cannot be empty")

	password, err := p.Password("Password")
	require.NoError(t, err)
	assert.Equal(t, "secret", password)
	assert.Contains(t, out.String(), "Password cannot be empty")

	// The last line has no newline
	phone, err := p.Optional("Phone")
	require.NoError(t, err)
	assert.Equal(t, "+15551234567", phone)

	_, err = p.Required("Name")
	assert.ErrorIs(t, err, ErrNoInput)
}

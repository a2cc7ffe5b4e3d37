/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSingleLine(t *testing.T) {
	assert.Equal(t, "", SingleLine("  \n ", 0))
	assert.Equal(t, "Token expired, please retry", SingleLine(" Token\texpired,\r\n please   retry\n", 0))
	assert.Equal(t, "abc...", SingleLine("abcdef", 3))
	assert.Equal(t, "héllo", SingleLine("héllo", 5))
}

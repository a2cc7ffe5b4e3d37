/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToText(t *testing.T) {
	f := NewFields(NewField("status", 401), NewField("path", "/auth/profile"))
	f.AppendKV("msg", "token expired")
	assert.Equal(t, `status=401 path=/auth/profile msg="token expired"`, f.ToText())

	var nilFields *Fields
	assert.Equal(t, "", nilFields.ToText())
	assert.Nil(t, nilFields.ToPairs())
}

func TestSecret(t *testing.T) {
	assert.Equal(t, "<none>", Secret("token", "").V)
	assert.Equal(t, "****", Secret("token", "short").V)
	assert.Equal(t, "****wxyz", Secret("token", "abcdefghijklmnopqrstuvwxyz").V)
}

func TestToPairs(t *testing.T) {
	f := NewFields(NewField("a", 1), NewField("b", "two"))
	pairs := f.ToPairs()
	assert.Len(t, pairs, 2)
	assert.Equal(t, "b", pairs[1].Name())
	assert.Equal(t, "two", pairs[1].Value())
}

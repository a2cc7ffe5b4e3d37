/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetGet(t *testing.T) {
	c := New(time.Minute)
	c.Set("a", []byte("one"))
	assert.Equal(t, []byte("one"), c.Get("a"))
	assert.Nil(t, c.Get("missing"))

	c.Clear()
	assert.Nil(t, c.Get("a"))
}

func TestExpiry(t *testing.T) {
	c := New(time.Minute)
	c.Set("a", []byte("one"))

	c.TTL(-time.Second)
	assert.Nil(t, c.Get("a"))
}

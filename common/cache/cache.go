/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package cache

import (
	"sync"
	"time"

	"github.com/DocCert/DocCert/common/interfaces"
)

// Instance implements the Cache interface and provides
// a simple in-memory cache for byte slices indexed by string keys.
type Instance struct {
	mu    sync.Mutex
	cache map[string]cacheItem
	ttl   time.Duration
}

type cacheItem struct {
	bytes   []byte
	created time.Time
}

func New(ttl time.Duration) interfaces.Cache {
	return &Instance{
		cache: make(map[string]cacheItem),
		ttl:   ttl}
}

func (c *Instance) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[string]cacheItem)
}

func (c *Instance) TTL(ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ttl = ttl
}

func (c *Instance) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[key] = cacheItem{bytes: data, created: time.Now()}
}

func (c *Instance) Get(key string) []byte {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.cache[key]
	if !ok {
		return nil
	}

	// Expiration check
	if time.Since(v.created) > c.ttl {
		delete(c.cache, key)
		return nil
	}
	return v.bytes
}

/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package hasher

import (
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"strings"
	"time"

	"github.com/DocCert/DocCert/common/cache"
	"github.com/DocCert/DocCert/common/interfaces"
)

// Hasher computes file digests locally so that a user can compare a file
// against the hash recorded by the document service.
type Hasher struct {
	bytes    []byte // raw bytes returned by the hash function
	err      error
	cache    interfaces.Cache
	useCache bool
}

type Option func(*Hasher)

// New creates a Hasher using the supplied options.
func New(opts ...Option) *Hasher {
	// Initializing cache avoids nil pointer dereference
	r := &Hasher{cache: cache.New(0)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithCache keeps computed digests for ttl, keyed by file path
func WithCache(ttl time.Duration) Option {
	return func(h *Hasher) {
		h.cache = cache.New(ttl)
		h.useCache = true
	}
}

func (h *Hasher) Bytes() []byte {
	return h.bytes
}

// Err returns the error that prevented the digest from being computed
func (h *Hasher) Err() error {
	return h.err
}

func (h *Hasher) Hex() string {
	return hex.EncodeToString(h.bytes)
}

func (h *Hasher) Base64() string {
	return base64.StdEncoding.EncodeToString(h.bytes)
}

// Compare reports whether s matches the digest. Both hex (any case) and
// standard base64 encodings are accepted.
func (h *Hasher) Compare(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || len(h.bytes) < 1 {
		return false
	}

	if b, err := hex.DecodeString(strings.ToLower(s)); err == nil {
		return subtle.ConstantTimeCompare(b, h.bytes) == 1
	}
	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return subtle.ConstantTimeCompare(b, h.bytes) == 1
	}
	return false
}

/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package hasher

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
)

func (h *Hasher) SHA256File(f string) *Hasher {
	if f == "" {
		return &Hasher{err: errors.New("a file name is required")}
	}

	if h.useCache {
		if b := h.cache.Get(f); b != nil {
			return &Hasher{bytes: b}
		}
	}

	file, err := os.Open(f)
	if err != nil {
		return &Hasher{err: fmt.Errorf("error opening %s: %w", f, err)}
	}
	defer func(file *os.File) {
		_ = file.Close()
	}(file)

	r := h.SHA256Reader(file)
	if r.err == nil && h.useCache {
		h.cache.Set(f, r.bytes)
	}
	return r
}

func (h *Hasher) SHA256Reader(r io.Reader) *Hasher {
	hasher := sha256.New()
	if _, err := io.Copy(hasher, r); err != nil {
		return &Hasher{err: fmt.Errorf("error hashing data: %w", err)}
	}
	return &Hasher{bytes: hasher.Sum(nil)}
}

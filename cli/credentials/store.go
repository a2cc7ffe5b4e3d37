/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package credentials

// Keys under which session values are persisted. Each can be removed
// independently of the others.
const (
	KeyAccessToken  = "accessToken"
	KeyRefreshToken = "refreshToken"
	KeyUser         = "user"
)

var allKeys = []string{KeyAccessToken, KeyRefreshToken, KeyUser}

// Store is the persistence medium for session values. Implementations must
// be safe for concurrent use. Get returns an empty string and no error for
// a key that is not present.
type Store interface {
	Get(key string) (string, error)
	Put(values map[string]string) error
	Delete(keys ...string) error
	Close() error
}

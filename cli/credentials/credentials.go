/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package credentials manages the access and refresh tokens and the cached
// user profile on top of a Store.
package credentials

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DocCert/DocCert/common/schema"
)

// Credentials provides typed access to the session values in a Store
type Credentials struct {
	store Store
}

func New(store Store) (*Credentials, error) {
	if store == nil {
		return nil, errors.New("store is required")
	}
	return &Credentials{store: store}, nil
}

func (c *Credentials) AccessToken() (string, error) {
	return c.store.Get(KeyAccessToken)
}

func (c *Credentials) RefreshToken() (string, error) {
	return c.store.Get(KeyRefreshToken)
}

// SetPair stores a new access/refresh pair atomically. An empty refresh
// token leaves the stored one untouched, which is what a refresh that does
// not rotate the refresh token needs.
func (c *Credentials) SetPair(accessToken, refreshToken string) error {
	if accessToken == "" {
		return errors.New("access token is empty")
	}

	values := map[string]string{KeyAccessToken: accessToken}
	if refreshToken != "" {
		values[KeyRefreshToken] = refreshToken
	}
	return c.store.Put(values)
}

// SetSession stores the pair and the user returned by login or register
func (c *Credentials) SetSession(accessToken, refreshToken string, user schema.User) error {
	if accessToken == "" || refreshToken == "" {
		return errors.New("server returned an empty token")
	}

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize user: %w", err)
	}

	return c.store.Put(map[string]string{
		KeyAccessToken:  accessToken,
		KeyRefreshToken: refreshToken,
		KeyUser:         string(data),
	})
}

// User returns the cached user, or nil if none is stored
func (c *Credentials) User() (*schema.User, error) {
	data, err := c.store.Get(KeyUser)
	if err != nil || data == "" {
		return nil, err
	}

	var user schema.User
	if err = json.Unmarshal([]byte(data), &user); err != nil {
		return nil, fmt.Errorf("failed to deserialize user: %w", err)
	}
	return &user, nil
}

func (c *Credentials) SetUser(user schema.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize user: %w", err)
	}
	return c.store.Put(map[string]string{KeyUser: string(data)})
}

// AccessExpired drops the access token but keeps the refresh token, so the
// next authentication failure re-derives a new access token.
func (c *Credentials) AccessExpired() error {
	return c.store.Delete(KeyAccessToken)
}

// Clear removes every session value. Clearing an empty store is not an error.
func (c *Credentials) Clear() error {
	return c.store.Delete(allKeys...)
}

/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo describes an access token for display. Tokens are opaque to
// the client; when one happens to be a JWT its claims are read without
// verifying the signature.
type TokenInfo struct {
	Present   bool       `json:"present" yaml:"present"`
	JWT       bool       `json:"jwt" yaml:"jwt"`
	Subject   string     `json:"subject,omitempty" yaml:"subject,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty" yaml:"expiresAt,omitempty"`
	Expired   bool       `json:"expired" yaml:"expired"`
}

func Inspect(token string, now time.Time) TokenInfo {
	info := TokenInfo{Present: token != ""}
	if token == "" {
		return info
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return info
	}
	info.JWT = true

	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		t := exp.Time
		info.ExpiresAt = &t
		info.Expired = now.After(t)
	}
	return info
}

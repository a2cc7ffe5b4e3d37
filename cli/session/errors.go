/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package session

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNoRefreshToken = errors.New("no refresh token available")
	ErrRefreshFailed  = errors.New("access token refresh failed")
	ErrRetryRejected  = errors.New("refreshed access token was rejected")
)

// AuthFailure is returned by the Detect stage when the server rejected the
// credential of a request. Response is the unread 401 response; the stage
// that consumes the failure owns its body.
type AuthFailure struct {
	Response *http.Response
	Token    string // bearer token the request was sent with, empty if anonymous
}

func (e *AuthFailure) Error() string {
	if e.Response == nil || e.Response.Request == nil {
		return "authentication failed"
	}
	return fmt.Sprintf("authentication failed: %s %s returned %d",
		e.Response.Request.Method, e.Response.Request.URL.Path, e.Response.StatusCode)
}

/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package session

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/DocCert/DocCert/common/fields"
)

// Middleware decorates a RoundTripper with one stage of the request pipeline
type Middleware func(http.RoundTripper) http.RoundTripper

// RoundTripperFunc adapts a function to the http.RoundTripper interface
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Chain wraps base with the middleware. The first middleware listed sees
// the request first.
func Chain(base http.RoundTripper, middleware ...Middleware) http.RoundTripper {
	for i := len(middleware) - 1; i >= 0; i-- {
		base = middleware[i](base)
	}
	return base
}

// Transport returns the full session pipeline on top of base
func (m *Manager) Transport(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return Chain(base, m.Recover, m.Attach, Detect)
}

type contextKey int

const (
	retriedKey contextKey = iota
	noRecoveryKey
)

// WithoutRecovery marks requests made with ctx as exempt from the refresh
// path. Login and register use it so that a rejected password is returned
// as is instead of being treated as an expired session.
func WithoutRecovery(ctx context.Context) context.Context {
	return context.WithValue(ctx, noRecoveryKey, true)
}

// Retried reports whether req is the single resubmission of a failed request
func Retried(req *http.Request) bool {
	v, _ := req.Context().Value(retriedKey).(bool)
	return v
}

func recoveryDisabled(req *http.Request) bool {
	v, _ := req.Context().Value(noRecoveryKey).(bool)
	return v
}

// Attach is the attach-credential stage
func (m *Manager) Attach(next http.RoundTripper) http.RoundTripper {
	return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return next.RoundTrip(m.AttachCredential(req))
	})
}

// AttachCredential returns a copy of req carrying the stored access token
// as a bearer credential. Without a stored token, or when req already has
// an Authorization header, req is returned unchanged.
func (m *Manager) AttachCredential(req *http.Request) *http.Request {
	if req.Header.Get("Authorization") != "" {
		return req
	}

	token, err := m.creds.AccessToken()
	if err != nil {
		m.logger.Warningf(3001, "unable to read access token, sending request anonymously: %s", err.Error())
		return req
	}
	if token == "" {
		return req
	}

	out := req.Clone(req.Context())
	out.Header.Set("Authorization", "Bearer "+token)
	return out
}

// Detect is the detect-failure stage
func Detect(next http.RoundTripper) http.RoundTripper {
	return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		resp, err := next.RoundTrip(req)
		if err != nil {
			return resp, err
		}
		return OnResponse(req, resp)
	})
}

// OnResponse passes resp through unless it signals an authentication
// failure, in which case it returns an *AuthFailure owning resp
func OnResponse(req *http.Request, resp *http.Response) (*http.Response, error) {
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}
	return nil, &AuthFailure{Response: resp, Token: bearerToken(req)}
}

// Recover is the refresh-and-retry stage
func (m *Manager) Recover(next http.RoundTripper) http.RoundTripper {
	return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		resp, err := next.RoundTrip(req)

		var failure *AuthFailure
		if !errors.As(err, &failure) {
			return resp, err
		}
		return m.OnAuthFailure(req, failure, next)
	})
}

// OnAuthFailure decides between resubmitting req once with a fresh access
// token and returning the 401 to the caller. When the session cannot be
// recovered, credentials are cleared before the 401 is returned.
func (m *Manager) OnAuthFailure(req *http.Request, failure *AuthFailure, next http.RoundTripper) (*http.Response, error) {
	f := fields.NewFields(
		fields.NewField("method", req.Method),
		fields.NewField("path", req.URL.Path))

	if recoveryDisabled(req) {
		return failure.Response, nil
	}

	if Retried(req) {
		m.logger.Warning(3002, "resubmitted request rejected", f)
		m.Expire(ErrRetryRejected)
		return failure.Response, nil
	}

	// A body that has already been consumed cannot be sent twice
	if req.Body != nil && req.Body != http.NoBody && req.GetBody == nil {
		m.logger.Warning(3003, "request body cannot be replayed, not retrying", f)
		return failure.Response, nil
	}

	token, err := m.renew(req.Context(), failure.Token)
	if err != nil {
		return failure.Response, nil
	}

	retry, err := resubmission(req, token)
	if err != nil {
		m.logger.Errorf(3004, "unable to rebuild request: %s", err.Error())
		return failure.Response, nil
	}
	discard(failure.Response)

	m.metrics.retries.Inc()
	m.logger.Debug(3005, "retrying request with refreshed token", f)

	resp, err := next.RoundTrip(retry)
	var again *AuthFailure
	if errors.As(err, &again) {
		m.logger.Warning(3002, "resubmitted request rejected", f)
		m.Expire(ErrRetryRejected)
		return again.Response, nil
	}
	return resp, err
}

// resubmission clones req, marks it retried and sets token as its credential
func resubmission(req *http.Request, token string) (*http.Request, error) {
	out := req.Clone(context.WithValue(req.Context(), retriedKey, true))
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		out.Body = body
	}
	out.Header.Set("Authorization", "Bearer "+token)
	return out, nil
}

func bearerToken(req *http.Request) string {
	h := req.Header.Get("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return h[7:]
	}
	return ""
}

func discard(resp *http.Response) {
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
}

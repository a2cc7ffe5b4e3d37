/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package session

import (
	"context"
	"errors"
	"fmt"
)

const flightKey = "refresh"

// renew returns an access token to retry with. stale is the token the
// failed request carried.
//
// If the stored token already differs from stale, another request has
// refreshed in the meantime and its token is used without refreshing
// again. Otherwise the refresh runs behind the single-flight guard, so
// concurrent failures share one call to the Refresher.
func (m *Manager) renew(ctx context.Context, stale string) (string, error) {
	current, err := m.creds.AccessToken()
	if err == nil && current != "" && current != stale {
		return current, nil
	}

	refreshToken, err := m.creds.RefreshToken()
	if err != nil || refreshToken == "" {
		m.Expire(ErrNoRefreshToken)
		return "", ErrNoRefreshToken
	}

	v, err, shared := m.flight.Do(flightKey, func() (any, error) {
		return m.refresh(ctx, stale)
	})
	if shared {
		m.logger.Debug(3010, "joined in-flight token refresh", nil)
	}
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// refresh runs inside the single-flight guard. Only one refresh is ever
// outstanding, so teardown on failure happens once per failed refresh.
func (m *Manager) refresh(ctx context.Context, stale string) (string, error) {
	// Re-read inside the guard: a refresh that finished between the check
	// in renew and this call has already stored a new pair
	if current, err := m.creds.AccessToken(); err == nil && current != "" && current != stale {
		return current, nil
	}

	refreshToken, err := m.creds.RefreshToken()
	if err != nil || refreshToken == "" {
		m.Expire(ErrNoRefreshToken)
		return "", ErrNoRefreshToken
	}

	m.logger.Info(3011, "attempting access token refresh", nil)

	// Waiters share this call, so it must not end when the first caller
	// gives up. The refresher applies its own timeout.
	resp, err := m.refresher.Refresh(context.WithoutCancel(ctx), refreshToken)
	if err == nil && resp.AccessToken == "" {
		err = errors.New("server returned an empty access token")
	}
	if err != nil {
		m.metrics.refresh.WithLabelValues("failure").Inc()
		m.logger.Errorf(3012, "token refresh failed: %s", err.Error())
		m.Expire(fmt.Errorf("%w: %w", ErrRefreshFailed, err))
		return "", fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}

	if err = m.creds.SetPair(resp.AccessToken, resp.RefreshToken); err != nil {
		// The new token is still good for the requests waiting on it
		m.logger.Errorf(3013, "failed to persist refreshed token: %s", err.Error())
	}

	m.metrics.refresh.WithLabelValues("success").Inc()
	m.logger.Info(3014, "access token refresh successful", nil)
	return resp.AccessToken, nil
}

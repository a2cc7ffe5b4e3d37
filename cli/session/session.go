/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package session

import (
	"context"
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/singleflight"

	"github.com/DocCert/DocCert/cli/credentials"
	"github.com/DocCert/DocCert/common/interfaces"
	"github.com/DocCert/DocCert/common/null"
	"github.com/DocCert/DocCert/common/schema"
)

// Refresher exchanges a refresh token for a new access token
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (schema.RefreshResponse, error)
}

// RefresherFunc adapts a function to the Refresher interface
type RefresherFunc func(ctx context.Context, refreshToken string) (schema.RefreshResponse, error)

func (f RefresherFunc) Refresh(ctx context.Context, refreshToken string) (schema.RefreshResponse, error) {
	return f(ctx, refreshToken)
}

// Manager holds the session state shared by every request of one client
type Manager struct {
	creds     *credentials.Credentials
	refresher Refresher
	logger    interfaces.Logger
	registry  prometheus.Registerer
	metrics   *metrics
	flight    singleflight.Group

	mu        sync.Mutex
	listeners []func(reason error)
	expired   chan struct{}
	once      sync.Once
}

type Option func(*Manager) error

// New returns a Manager. Credentials and a Refresher are required.
func New(options ...Option) (*Manager, error) {
	m := &Manager{
		logger:  null.Logger(),
		expired: make(chan struct{}),
	}
	for _, option := range options {
		if err := option(m); err != nil {
			return nil, err
		}
	}

	if m.creds == nil {
		return nil, errors.New("credentials are required")
	}
	if m.refresher == nil {
		return nil, errors.New("refresher is required")
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	var err error
	if m.metrics, err = newMetrics(m.registry); err != nil {
		return nil, err
	}
	return m, nil
}

func WithCredentials(creds *credentials.Credentials) Option {
	return func(m *Manager) error {
		if creds == nil {
			return errors.New("credentials are nil")
		}
		m.creds = creds
		return nil
	}
}

func WithRefresher(refresher Refresher) Option {
	return func(m *Manager) error {
		if refresher == nil {
			return errors.New("refresher is nil")
		}
		m.refresher = refresher
		return nil
	}
}

func WithLogger(logger interfaces.Logger) Option {
	return func(m *Manager) error {
		if logger == nil {
			return errors.New("logger is nil")
		}
		m.logger = logger
		return nil
	}
}

// WithRegisterer registers the session metrics with reg instead of a
// private registry
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(m *Manager) error {
		if reg == nil {
			return errors.New("registerer is nil")
		}
		m.registry = reg
		return nil
	}
}

// Credentials returns the credential store the manager reads and writes
func (m *Manager) Credentials() *credentials.Credentials {
	return m.creds
}

// OnExpired registers fn to be called after the session has been torn
// down. fn runs on the goroutine that detected the failure and must not
// block.
func (m *Manager) OnExpired(fn func(reason error)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// Expire clears every stored credential and notifies the OnExpired
// subscribers
func (m *Manager) Expire(reason error) {
	if err := m.creds.Clear(); err != nil {
		m.logger.Errorf(3020, "failed to clear credentials: %s", err.Error())
	}
	m.metrics.expired.Inc()
	m.logger.Warningf(3021, "session expired: %s", reason.Error())

	m.mu.Lock()
	listeners := make([]func(error), len(m.listeners))
	copy(listeners, m.listeners)
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(reason)
	}
	m.once.Do(func() { close(m.expired) })
}

// Expired returns a channel that is closed the first time the session
// is torn down
func (m *Manager) Expired() <-chan struct{} {
	return m.expired
}

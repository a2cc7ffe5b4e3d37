/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package communications

import (
	"errors"
	"net/http"
	"time"

	"github.com/DocCert/DocCert/common/interfaces"
	"github.com/DocCert/DocCert/common/null"
)

// DefaultTimeout bounds every outbound call, including a retry after a
// token refresh
const DefaultTimeout = 10 * time.Second

// Communications sends requests to one backend service
type Communications struct {
	baseURL   string
	transport http.RoundTripper
	timeout   time.Duration
	logger    interfaces.Logger
	client    *http.Client
}

type Option func(*Communications) error

// New returns a Communications object. A base URL is required.
func New(options ...Option) (*Communications, error) {
	c := &Communications{
		timeout: DefaultTimeout,
		logger:  null.Logger(),
	}
	for _, option := range options {
		if err := option(c); err != nil {
			return nil, err
		}
	}

	if c.baseURL == "" {
		return nil, errors.New("base URL is required")
	}

	c.client = &http.Client{
		Transport: c.transport,
		Timeout:   c.timeout,
	}
	return c, nil
}

// WithBaseURL sets the scheme, host and optional path prefix of the service
func WithBaseURL(server string) Option {
	return func(c *Communications) error {
		base, err := baseURL(server)
		if err != nil {
			return err
		}
		c.baseURL = base
		return nil
	}
}

// WithTransport sets the round tripper, normally the session pipeline.
// Without it requests are sent anonymously through http.DefaultTransport.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Communications) error {
		if rt == nil {
			return errors.New("transport is nil")
		}
		c.transport = rt
		return nil
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Communications) error {
		if timeout <= 0 {
			return errors.New("timeout must be positive")
		}
		c.timeout = timeout
		return nil
	}
}

func WithLogger(logger interfaces.Logger) Option {
	return func(c *Communications) error {
		if logger == nil {
			return errors.New("logger is nil")
		}
		c.logger = logger
		return nil
	}
}

// BaseURL returns the normalized service URL
func (c *Communications) BaseURL() string {
	return c.baseURL
}

/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package auth is the client of the authentication service. It is the only
// place where a session is created (login, register) or ended on request
// (logout); expiry is handled by the session package.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/DocCert/DocCert/cli/communications"
	"github.com/DocCert/DocCert/cli/session"
	"github.com/DocCert/DocCert/common/interfaces"
	"github.com/DocCert/DocCert/common/null"
	"github.com/DocCert/DocCert/common/schema"
)

type Service struct {
	comms    *communications.Communications
	manager  *session.Manager
	validate *validator.Validate
	logger   interfaces.Logger
}

type Option func(*Service) error

// New returns a Service. The communications object must send requests
// through the manager's transport.
func New(options ...Option) (*Service, error) {
	s := &Service{
		validate: validator.New(),
		logger:   null.Logger(),
	}
	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}

	if s.comms == nil {
		return nil, errors.New("communications are required")
	}
	if s.manager == nil {
		return nil, errors.New("session manager is required")
	}
	return s, nil
}

func WithCommunications(comms *communications.Communications) Option {
	return func(s *Service) error {
		if comms == nil {
			return errors.New("communications are nil")
		}
		s.comms = comms
		return nil
	}
}

func WithManager(manager *session.Manager) Option {
	return func(s *Service) error {
		if manager == nil {
			return errors.New("session manager is nil")
		}
		s.manager = manager
		return nil
	}
}

func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) error {
		if logger == nil {
			return errors.New("logger is nil")
		}
		s.logger = logger
		return nil
	}
}

// Health returns the raw health document of the authentication service
func (s *Service) Health(ctx context.Context) (map[string]any, error) {
	_, data, err := s.comms.Get(ctx, schema.EndpointHealth)
	if err != nil {
		return nil, fmt.Errorf("health check failed: %w", err)
	}

	health := make(map[string]any)
	if err = json.Unmarshal(data, &health); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return health, nil
}

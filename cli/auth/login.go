/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package auth

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/DocCert/DocCert/cli/session"
	"github.com/DocCert/DocCert/common/fields"
	"github.com/DocCert/DocCert/common/schema"
)

// Login authenticates with email and password and stores the new session
func (s *Service) Login(ctx context.Context, req schema.LoginRequest) (*schema.AuthResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}
	return s.authenticate(ctx, schema.EndpointLogin, req, req.Email)
}

// Register creates an account and stores the new session
func (s *Service) Register(ctx context.Context, req schema.RegisterRequest) (*schema.AuthResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}
	return s.authenticate(ctx, schema.EndpointRegister, req, req.Email)
}

func (s *Service) authenticate(ctx context.Context, endpoint string, payload any, email string) (*schema.AuthResponse, error) {
	f := fields.NewFields(fields.NewField("email", email), fields.NewField("endpoint", endpoint))

	// A 401 here means bad credentials, not an expired session
	_, data, err := s.comms.Post(session.WithoutRecovery(ctx), endpoint, payload)
	if err != nil {
		f.AppendKV("error", err.Error())
		s.logger.Warning(5001, "authentication failed", f)
		return nil, err
	}

	var resp schema.AuthResponse
	if err = json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if err = s.manager.Credentials().SetSession(resp.AccessToken, resp.RefreshToken, resp.User); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	s.logger.Info(5002, "authenticated", f)
	return &resp, nil
}

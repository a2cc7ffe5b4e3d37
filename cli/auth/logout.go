/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package auth

import (
	"context"
	"fmt"

	"github.com/DocCert/DocCert/cli/session"
	"github.com/DocCert/DocCert/common/schema"
)

// Logout tells the server the session is over and clears local state.
// The server call is best-effort: local state is cleared even when it
// fails, and logging out without a session is not an error.
func (s *Service) Logout(ctx context.Context) error {
	creds := s.manager.Credentials()

	token, err := creds.AccessToken()
	if err == nil && token != "" {
		if _, _, err = s.comms.Post(session.WithoutRecovery(ctx), schema.EndpointLogout, nil); err != nil {
			s.logger.Warningf(5010, "logout request failed: %s", err.Error())
		}
	}

	if err = creds.Clear(); err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	s.logger.Info(5011, "logged out", nil)
	return nil
}

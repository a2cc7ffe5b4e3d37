/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package auth

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/DocCert/DocCert/common/schema"
)

// Profile fetches the current user and refreshes the cached copy
func (s *Service) Profile(ctx context.Context) (*schema.User, error) {
	_, data, err := s.comms.Get(ctx, schema.EndpointProfile)
	if err != nil {
		return nil, err
	}

	var resp schema.ProfileResponse
	if err = json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if err = s.manager.Credentials().SetUser(resp.User); err != nil {
		s.logger.Warningf(5020, "failed to cache user: %s", err.Error())
	}
	return &resp.User, nil
}

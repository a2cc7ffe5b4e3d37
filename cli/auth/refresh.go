/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DocCert/DocCert/cli/communications"
	"github.com/DocCert/DocCert/cli/session"
	"github.com/DocCert/DocCert/common/schema"
)

var _ session.Refresher = (*Refresher)(nil)

// Refresher calls the refresh endpoint. It must be given a communications
// object without the session transport, otherwise a rejected refresh
// would itself try to refresh.
type Refresher struct {
	comms *communications.Communications
}

func NewRefresher(comms *communications.Communications) (*Refresher, error) {
	if comms == nil {
		return nil, errors.New("communications are required")
	}
	return &Refresher{comms: comms}, nil
}

func (r *Refresher) Refresh(ctx context.Context, refreshToken string) (schema.RefreshResponse, error) {
	var resp schema.RefreshResponse

	_, data, err := r.comms.Post(ctx, schema.EndpointRefresh, schema.RefreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return resp, err
	}

	if err = json.Unmarshal(data, &resp); err != nil {
		return resp, fmt.Errorf("deserialization failed: %w", err)
	}
	return resp, nil
}

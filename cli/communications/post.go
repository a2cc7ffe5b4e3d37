/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package communications

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Post sends a JSON payload to the specified endpoint and returns the response body.
func (c *Communications) Post(ctx context.Context, endpoint string, payload any) (int, []byte, error) {
	var jsonData []byte
	var err error

	// Serialize the payload to JSON if it's not nil
	if payload != nil {
		jsonData, err = json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to serialize request: %w", err)
		}
		return c.sendRequest(ctx, http.MethodPost, endpoint, jsonData, "application/json")
	}

	return c.sendRequest(ctx, http.MethodPost, endpoint, nil, "")
}

/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package communications

import (
	"context"
	"net/http"
)

// Delete sends a DELETE request to the specified endpoint and returns the response body.
func (c *Communications) Delete(ctx context.Context, endpoint string) (int, []byte, error) {
	return c.sendRequest(ctx, http.MethodDelete, endpoint, nil, "")
}

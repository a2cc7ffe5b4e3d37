/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package communications

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Get sends a GET request to the specified endpoint and returns the response body.
func (c *Communications) Get(ctx context.Context, endpoint string) (int, []byte, error) {
	return c.sendRequest(ctx, http.MethodGet, endpoint, nil, "")
}

// Download streams the body of a GET request to w and returns the number
// of bytes written. Error bodies are not written to w.
func (c *Communications) Download(ctx context.Context, endpoint string, w io.Writer) (int64, error) {
	req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil, "")
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "*/*")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warningf(4003, "download %s failed: %s", endpoint, err.Error())
		return 0, transportError(err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
		return 0, newAPIError(resp.StatusCode, body)
	}

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return n, fmt.Errorf("error writing download: %w", err)
	}
	return n, nil
}

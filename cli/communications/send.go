/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package communications

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/DocCert/DocCert/common/fields"
)

// newRequest builds a request with the headers every call carries. A body
// is always passed as a bytes.Reader so the session layer can replay it.
func (c *Communications) newRequest(ctx context.Context, method, endpoint string, payload []byte, contentType string) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(endpoint), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req, nil
}

// do sends req and returns the status and response body. A non-2xx
// status is returned as an *APIError together with the status and body.
func (c *Communications) do(req *http.Request) (int, []byte, error) {
	f := fields.NewFields(
		fields.NewField("method", req.Method),
		fields.NewField("path", req.URL.Path),
		fields.NewField("request_id", req.Header.Get("X-Request-ID")))

	resp, err := c.client.Do(req)
	if err != nil {
		f.AppendKV("error", err.Error())
		c.logger.Warning(4001, "request failed", f)
		return 0, nil, transportError(err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	var responseBody bytes.Buffer
	if _, err = responseBody.ReadFrom(resp.Body); err != nil {
		return resp.StatusCode, nil, transportError(fmt.Errorf("failed to read response body: %w", err))
	}

	f.AppendKV("status", resp.StatusCode)
	c.logger.Debug(4002, "request complete", f)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, responseBody.Bytes(), newAPIError(resp.StatusCode, responseBody.Bytes())
	}
	return resp.StatusCode, responseBody.Bytes(), nil
}

// sendRequest is the lower level function used by Get, Post and Delete
func (c *Communications) sendRequest(ctx context.Context, method, endpoint string, payload []byte, contentType string) (int, []byte, error) {
	req, err := c.newRequest(ctx, method, endpoint, payload, contentType)
	if err != nil {
		return 0, nil, err
	}
	return c.do(req)
}

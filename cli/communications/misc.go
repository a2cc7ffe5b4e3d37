/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package communications

import (
	"fmt"
	"net/url"
	"strings"
)

// baseURL validates a service URL and strips anything after the path
func baseURL(server string) (string, error) {
	parsedURL, err := url.Parse(strings.TrimSpace(server))
	if err != nil {
		return "", fmt.Errorf("invalid service URL: %w", err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return "", fmt.Errorf("service URL must use HTTP or HTTPS: %q", server)
	}

	if parsedURL.Host == "" {
		return "", fmt.Errorf("service URL has no host: %q", server)
	}

	parsedURL.RawQuery = ""
	parsedURL.Fragment = ""
	return strings.TrimRight(parsedURL.String(), "/"), nil
}

// buildURL appends an endpoint to the base URL
func (c *Communications) buildURL(endpoint string) string {
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	return c.baseURL + endpoint
}

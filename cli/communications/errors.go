/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package communications

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/DocCert/DocCert/common"
	"github.com/DocCert/DocCert/common/schema"
)

var (
	// ErrTimeout means the call exceeded its deadline. It never triggers
	// a token refresh.
	ErrTimeout = errors.New("request timed out")

	// ErrNetwork covers every other failure to obtain a response
	ErrNetwork = errors.New("network error")

	// ErrUnauthorized matches an *APIError with status 401 that survived
	// the session refresh path
	ErrUnauthorized = errors.New("unauthorized")
)

const maxMessage = 512

// APIError is a non-2xx response returned verbatim to the caller
type APIError struct {
	Status  int
	Message string
	Body    []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned HTTP %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server returned HTTP %d", e.Status)
}

func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}

// newAPIError extracts the message field from a JSON error body when
// there is one
func newAPIError(status int, body []byte) *APIError {
	e := &APIError{Status: status, Body: body}

	var resp schema.APIErrorResponse
	if err := json.Unmarshal(body, &resp); err == nil {
		e.Message = resp.Message
		if e.Message == "" {
			e.Message = resp.Error
		}
	}

	e.Message = common.SingleLine(e.Message, maxMessage)
	if e.Message == "" {
		e.Message = strings.TrimSpace(http.StatusText(status))
	}
	return e
}

// transportError classifies an error returned by http.Client.Do
func transportError(err error) error {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %w", ErrNetwork, err)
}

/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package auth

import "github.com/DocCert/DocCert/common/schema"

// State is the session state observed by the rest of the client
type State int

const (
	Anonymous State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// State reports Authenticated when both an access token and a cached user
// are stored
func (s *Service) State() State {
	creds := s.manager.Credentials()

	token, err := creds.AccessToken()
	if err != nil || token == "" {
		return Anonymous
	}

	user, err := creds.User()
	if err != nil || user == nil {
		return Anonymous
	}
	return Authenticated
}

// StoredUser returns the cached user without contacting the server
func (s *Service) StoredUser() (*schema.User, error) {
	return s.manager.Credentials().User()
}

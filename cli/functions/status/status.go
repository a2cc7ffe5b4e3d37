/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package status

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/DocCert/DocCert/cli/global"
	"github.com/DocCert/DocCert/cli/session"
	"github.com/DocCert/DocCert/common/schema"
)

// Status is the local view of the session. No request is sent.
type Status struct {
	State          string            `json:"state" yaml:"state"`
	User           *schema.User      `json:"user,omitempty" yaml:"user,omitempty"`
	AccessToken    session.TokenInfo `json:"accessToken" yaml:"accessToken"`
	RefreshToken   bool              `json:"refreshToken" yaml:"refreshToken"`
	AuthURL        string            `json:"authUrl" yaml:"authUrl"`
	DocumentURL    string            `json:"documentUrl" yaml:"documentUrl"`
	CredentialFile string            `json:"credentialFile" yaml:"credentialFile"`
}

func Register() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the stored session without contacting the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return global.Run(cmd, func(_ context.Context, r *global.Runtime) error {
				s, err := collect(r, time.Now())
				if err != nil {
					return err
				}
				return r.Printer.Print(s)
			})
		},
	}
}

func collect(r *global.Runtime, now time.Time) (*Status, error) {
	creds := r.Manager.Credentials()

	access, err := creds.AccessToken()
	if err != nil {
		return nil, err
	}
	refresh, err := creds.RefreshToken()
	if err != nil {
		return nil, err
	}
	user, err := r.Auth.StoredUser()
	if err != nil {
		return nil, err
	}

	return &Status{
		State:          r.Auth.State().String(),
		User:           user,
		AccessToken:    session.Inspect(access, now),
		RefreshToken:   refresh != "",
		AuthURL:        r.Config.AuthURL,
		DocumentURL:    r.Config.DocumentURL,
		CredentialFile: r.Config.CredentialFile,
	}, nil
}

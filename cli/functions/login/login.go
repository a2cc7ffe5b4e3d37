/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package login

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/DocCert/DocCert/cli/global"
	"github.com/DocCert/DocCert/cli/util"
	"github.com/DocCert/DocCert/common/schema"
)

func Register() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the authentication service",
		Long: "Log in with email and password. Values not given as flags are taken from\n" +
			"DOCCERT_EMAIL and DOCCERT_PASSWORD, or prompted for.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return global.Run(cmd, func(ctx context.Context, r *global.Runtime) error {
				return execute(ctx, r, util.NewPrompter(), email, password)
			})
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "Email address")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (prompted for if omitted)")
	return cmd
}

func execute(ctx context.Context, r *global.Runtime, prompt *util.Prompter, email, password string) error {
	var err error

	if email == "" {
		email = r.Config.Email
	}
	if password == "" {
		password = r.Config.Password
	}

	if email == "" {
		if email, err = prompt.Required("Email"); err != nil {
			return err
		}
	}
	if password == "" {
		if password, err = prompt.Password("Password"); err != nil {
			return err
		}
	}

	resp, err := r.Auth.Login(ctx, schema.LoginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}

	r.Printer.Message("Logged in as %s", resp.User.Email)
	return r.Printer.Print(resp.User)
}

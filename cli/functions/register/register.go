/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package register

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/DocCert/DocCert/cli/global"
	"github.com/DocCert/DocCert/cli/util"
	"github.com/DocCert/DocCert/common/schema"
)

func Register() *cobra.Command {
	var req schema.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Long:  "Create an account and log in. Missing values are prompted for.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return global.Run(cmd, func(ctx context.Context, r *global.Runtime) error {
				return execute(ctx, r, util.NewPrompter(), req)
			})
		},
	}

	cmd.Flags().StringVarP(&req.Email, "email", "e", "", "Email address")
	cmd.Flags().StringVarP(&req.FullName, "full-name", "n", "", "Full name")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "Phone number in international format (optional)")
	cmd.Flags().StringVarP(&req.Password, "password", "p", "", "Password, at least 8 characters (prompted for if omitted)")
	return cmd
}

func execute(ctx context.Context, r *global.Runtime, prompt *util.Prompter, req schema.RegisterRequest) error {
	var err error

	if req.Email == "" {
		if req.Email, err = prompt.Required("Email"); err != nil {
			return err
		}
	}
	if req.FullName == "" {
		if req.FullName, err = prompt.Required("Full name"); err != nil {
			return err
		}
	}
	if req.Password == "" {
		if req.Password, err = prompt.Password("Password"); err != nil {
			return err
		}
		confirm, err := prompt.Password("Confirm password")
		if err != nil {
			return err
		}
		if confirm != req.Password {
			return errors.New("passwords do not match")
		}
	}

	resp, err := r.Auth.Register(ctx, req)
	if err != nil {
		return err
	}

	r.Printer.Message("Account created, logged in as %s", resp.User.Email)
	return r.Printer.Print(resp.User)
}

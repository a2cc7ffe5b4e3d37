/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package profile

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/DocCert/DocCert/cli/global"
)

func Register() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the profile of the logged in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return global.Run(cmd, func(ctx context.Context, r *global.Runtime) error {
				user, err := r.Auth.Profile(ctx)
				if err != nil {
					return err
				}
				return r.Printer.Print(user)
			})
		},
	}
}

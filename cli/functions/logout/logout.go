/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package logout

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/DocCert/DocCert/cli/global"
)

func Register() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session and remove stored credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return global.Run(cmd, func(ctx context.Context, r *global.Runtime) error {
				if err := r.Auth.Logout(ctx); err != nil {
					return err
				}
				r.Printer.Message("Logged out")
				return nil
			})
		},
	}
}

/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package verify

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/DocCert/DocCert/cli/global"
)

var ErrMismatch = errors.New("recorded hash does not match the local file")

func Register() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <file>",
		Short: "Check whether a file has been certified",
		Long: "Send a file to the public verify endpoint and compare the recorded hash\n" +
			"with the SHA-256 of the local file. No login is required.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return global.Run(cmd, func(ctx context.Context, r *global.Runtime) error {
				report, err := r.Documents.VerifyFile(ctx, args[0])
				if err != nil {
					return err
				}

				r.Printer.Message("%s", report.Message)
				if err = r.Printer.Print(report); err != nil {
					return err
				}
				if report.HashMatches != nil && !*report.HashMatches {
					return ErrMismatch
				}
				return nil
			})
		},
	}
}

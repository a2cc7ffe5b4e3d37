/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DocCert/DocCert/cli/display"
	"github.com/DocCert/DocCert/cli/functions/documents"
	"github.com/DocCert/DocCert/cli/functions/health"
	"github.com/DocCert/DocCert/cli/functions/login"
	"github.com/DocCert/DocCert/cli/functions/logout"
	"github.com/DocCert/DocCert/cli/functions/profile"
	"github.com/DocCert/DocCert/cli/functions/register"
	"github.com/DocCert/DocCert/cli/functions/status"
	"github.com/DocCert/DocCert/cli/functions/verify"
	"github.com/DocCert/DocCert/cli/functions/version"
	"github.com/DocCert/DocCert/cli/global"
)

func main() {
	var err error

	// Get the name of this binary, eliminating any path information
	progName := os.Args[0]
	progName = progName[strings.LastIndex(progName, "/")+1:]

	// Initialize the root command
	rootCmd := &cobra.Command{
		Use:           progName,
		Short:         global.Description,
		Long:          global.LongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New("a subcommand is required")
		},
	}

	// Disable completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(&global.Output, "output", "o", "", "Output format: json or yaml (default from DOCCERT_OUTPUT)")
	rootCmd.PersistentFlags().BoolVar(&global.Debug, "debug", false, "Log requests and session metrics to stderr")

	// Add the functions
	rootCmd.AddCommand(login.Register())
	rootCmd.AddCommand(register.Register())
	rootCmd.AddCommand(logout.Register())
	rootCmd.AddCommand(profile.Register())
	rootCmd.AddCommand(status.Register())
	rootCmd.AddCommand(health.Register())
	rootCmd.AddCommand(documents.Register())
	rootCmd.AddCommand(verify.Register())
	rootCmd.AddCommand(version.Register())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	// Execute the CLI
	err = rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		display.ErrorWrapper(err)
		os.Exit(1)
	}
}

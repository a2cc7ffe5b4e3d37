/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package health

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/DocCert/DocCert/cli/global"
)

// Service is the health of one backend
type Service struct {
	URL    string         `json:"url" yaml:"url"`
	Health map[string]any `json:"health,omitempty" yaml:"health,omitempty"`
	Error  string         `json:"error,omitempty" yaml:"error,omitempty"`
}

func Register() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the authentication and document services",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return global.Run(cmd, func(ctx context.Context, r *global.Runtime) error {
				return r.Printer.Print(map[string]Service{
					"auth":      check(ctx, r.Config.AuthURL, r.Auth.Health),
					"documents": check(ctx, r.Config.DocumentURL, r.Documents.Health),
				})
			})
		},
	}
}

func check(ctx context.Context, url string, fn func(context.Context) (map[string]any, error)) Service {
	s := Service{URL: url}
	health, err := fn(ctx)
	if err != nil {
		s.Error = err.Error()
		return s
	}
	s.Health = health
	return s
}

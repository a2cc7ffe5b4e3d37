/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package global

import (
	"context"

	"github.com/spf13/cobra"
)

// Run opens the runtime for one command, calls fn and closes the runtime
func Run(cmd *cobra.Command, fn func(ctx context.Context, r *Runtime) error) error {
	r, err := Open()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	err = fn(ctx, r)
	if cerr := r.Close(); err == nil {
		err = cerr
	}
	return err
}

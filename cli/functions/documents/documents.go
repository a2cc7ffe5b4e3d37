/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package documents

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/DocCert/DocCert/cli/global"
)

// Register returns the documents command with subcommands
func Register() *cobra.Command {
	docCmd := &cobra.Command{
		Use:     "documents",
		Aliases: []string{"document", "docs"},
		Short:   "Manage documents",
		Long:    "Document commands: list, show, upload, certify, download, delete, verifications",
	}

	docCmd.AddCommand(listCmd())
	docCmd.AddCommand(showCmd())
	docCmd.AddCommand(uploadCmd())
	docCmd.AddCommand(certifyCmd())
	docCmd.AddCommand(downloadCmd())
	docCmd.AddCommand(deleteCmd())
	docCmd.AddCommand(verificationsCmd())

	return docCmd
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return global.Run(cmd, func(ctx context.Context, r *global.Runtime) error {
				docs, err := r.Documents.List(ctx)
				if err != nil {
					return err
				}
				return r.Printer.Print(docs)
			})
		},
	}
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <document_id>",
		Short: "Show a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return global.Run(cmd, func(ctx context.Context, r *global.Runtime) error {
				doc, err := r.Documents.Get(ctx, args[0])
				if err != nil {
					return err
				}
				return r.Printer.Print(doc)
			})
		},
	}
}

func uploadCmd() *cobra.Command {
	var certify bool

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return global.Run(cmd, func(ctx context.Context, r *global.Runtime) error {
				result, err := r.Documents.Upload(ctx, args[0])
				if err != nil {
					return err
				}
				r.Printer.Message("%s", result.Message)
				if !certify {
					return r.Printer.Print(result)
				}

				certified, err := r.Documents.Certify(ctx, result.Document.ID)
				if err != nil {
					return err
				}
				r.Printer.Message("%s", certified.Message)
				return r.Printer.Print(certified)
			})
		},
	}

	cmd.Flags().BoolVarP(&certify, "certify", "c", false, "Certify the document after uploading it")
	return cmd
}

func certifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "certify <document_id>",
		Short: "Record the hash of a document on the ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return global.Run(cmd, func(ctx context.Context, r *global.Runtime) error {
				result, err := r.Documents.Certify(ctx, args[0])
				if err != nil {
					return err
				}
				r.Printer.Message("%s", result.Message)
				return r.Printer.Print(result)
			})
		},
	}
}

func downloadCmd() *cobra.Command {
	var dest string

	cmd := &cobra.Command{
		Use:   "download <document_id>",
		Short: "Download the stored file",
		Long:  "Download the stored file. Without --file the original file name is used in the current directory.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return global.Run(cmd, func(ctx context.Context, r *global.Runtime) error {
				target := dest
				if target == "" {
					doc, err := r.Documents.Get(ctx, args[0])
					if err != nil {
						return err
					}
					target = filepath.Base(doc.OriginalName)
					if target == "." || target == "/" || target == ".." {
						target = doc.ID
					}
				}

				n, err := r.Documents.Download(ctx, args[0], target)
				if err != nil {
					return err
				}
				r.Printer.Message("Saved %s (%d bytes)", target, n)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&dest, "file", "f", "", "Destination file, which must not exist")
	return cmd
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <document_id>",
		Short: "Delete a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return global.Run(cmd, func(ctx context.Context, r *global.Runtime) error {
				if err := r.Documents.Delete(ctx, args[0]); err != nil {
					return err
				}
				r.Printer.Message("Document %s deleted", args[0])
				return nil
			})
		},
	}
}

func verificationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verifications <document_id>",
		Short: "Show the verification history of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return global.Run(cmd, func(ctx context.Context, r *global.Runtime) error {
				list, err := r.Documents.Verifications(ctx, args[0])
				if err != nil {
					return err
				}
				return r.Printer.Print(list)
			})
		},
	}
}

/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package documents

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/DocCert/DocCert/common/fields"
	"github.com/DocCert/DocCert/common/schema"
)

// Upload sends the file at path to the document service
func (s *Service) Upload(ctx context.Context, path string) (*schema.UploadResult, error) {
	data, err := readDocument(path)
	if err != nil {
		return nil, err
	}
	return s.UploadBytes(ctx, filepath.Base(path), data)
}

// UploadBytes sends data as a document named name
func (s *Service) UploadBytes(ctx context.Context, name string, data []byte) (*schema.UploadResult, error) {
	if err := checkSize(int64(len(data))); err != nil {
		return nil, err
	}

	_, body, err := s.comms.PostFile(ctx, schema.EndpointDocumentUpload, schema.DocumentFormField, name, data)
	if err != nil {
		s.logger.Warning(5100, "upload failed", fields.NewFields(
			fields.NewField("file", name),
			fields.NewField("error", err.Error())))
		return nil, err
	}

	env, err := decodeDocument(body)
	if err != nil {
		return nil, err
	}

	s.logger.Info(5101, "document uploaded", fields.NewFields(
		fields.NewField("file", name),
		fields.NewField("id", env.Data.Document.ID)))
	return &schema.UploadResult{Document: env.Data.Document, Message: env.Message}, nil
}

func readDocument(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if err = checkSize(info.Size()); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", path, err)
	}
	return data, nil
}

func checkSize(n int64) error {
	if n == 0 {
		return ErrEmptyFile
	}
	if n > schema.MaxDocumentSize {
		return fmt.Errorf("%w (%d bytes, limit %d)", ErrFileTooLarge, n, schema.MaxDocumentSize)
	}
	return nil
}

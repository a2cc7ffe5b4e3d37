/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package documents

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/DocCert/DocCert/common/fields"
	"github.com/DocCert/DocCert/common/schema"
)

// DownloadTo writes the stored file to w
func (s *Service) DownloadTo(ctx context.Context, id string, w io.Writer) (int64, error) {
	id, err := documentID(id)
	if err != nil {
		return 0, err
	}
	return s.comms.Download(ctx, schema.EndpointDownload(id), w)
}

// Download saves the stored file at dest. An existing file is not
// overwritten, and a partial file is removed on failure.
func (s *Service) Download(ctx context.Context, id, dest string) (int64, error) {
	file, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return 0, fmt.Errorf("unable to create %s: %w", dest, err)
	}

	n, err := s.DownloadTo(ctx, id, file)
	if cerr := file.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("unable to close %s: %w", dest, cerr)
	}
	if err != nil {
		_ = os.Remove(dest)
		return 0, err
	}

	s.logger.Info(5105, "document downloaded", fields.NewFields(
		fields.NewField("id", id),
		fields.NewField("file", dest),
		fields.NewField("bytes", n)))
	return n, nil
}

/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package communications

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// PostFile uploads data as a single multipart/form-data file part named
// field. The part's content type is detected from the data.
func (c *Communications) PostFile(ctx context.Context, endpoint, field, filename string, data []byte) (int, []byte, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(field), quoteEscaper.Replace(filename)))
	h.Set("Content-Type", mimetype.Detect(data).String())

	part, err := w.CreatePart(h)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create form part: %w", err)
	}
	if _, err = part.Write(data); err != nil {
		return 0, nil, fmt.Errorf("failed to write form part: %w", err)
	}
	if err = w.Close(); err != nil {
		return 0, nil, fmt.Errorf("failed to finish form: %w", err)
	}

	return c.sendRequest(ctx, http.MethodPost, endpoint, buf.Bytes(), w.FormDataContentType())
}

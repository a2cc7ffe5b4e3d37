/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package documents

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/DocCert/DocCert/common/schema"
)

// Report combines the service's verdict with a locally computed digest
type Report struct {
	schema.VerifyResponse `yaml:",inline"`
	File      string `json:"file" yaml:"file"`
	LocalHash string `json:"localHash" yaml:"localHash"`

	// HashMatches is set when the service returned a document. It tells
	// whether the recorded hash equals the digest of the local file.
	HashMatches *bool `json:"hashMatches,omitempty" yaml:"hashMatches,omitempty"`
}

// Verify asks the service whether data has been registered. The endpoint
// is public, so it works without a session.
func (s *Service) Verify(ctx context.Context, name string, data []byte) (*schema.VerifyResponse, error) {
	if err := checkSize(int64(len(data))); err != nil {
		return nil, err
	}

	_, body, err := s.comms.PostFile(ctx, schema.EndpointVerify, schema.DocumentFormField, name, data)
	if err != nil {
		return nil, err
	}

	var resp schema.VerifyResponse
	if err = json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return &resp, nil
}

// VerifyFile hashes the file at path locally and asks the service whether
// it has been registered
func (s *Service) VerifyFile(ctx context.Context, path string) (*Report, error) {
	data, err := readDocument(path)
	if err != nil {
		return nil, err
	}

	digest := s.hasher.SHA256File(path)
	if digest.Err() != nil {
		return nil, digest.Err()
	}

	resp, err := s.Verify(ctx, filepath.Base(path), data)
	if err != nil {
		return nil, err
	}

	report := &Report{VerifyResponse: *resp, File: path, LocalHash: digest.Hex()}
	if resp.Document != nil && resp.Document.FileHash != "" {
		matches := digest.Compare(resp.Document.FileHash)
		report.HashMatches = &matches
		if !matches {
			s.logger.Warningf(5110, "recorded hash of %s does not match the local file", path)
		}
	}
	return report, nil
}

/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package documents is the client of the document service
package documents

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/DocCert/DocCert/cli/communications"
	"github.com/DocCert/DocCert/common/hasher"
	"github.com/DocCert/DocCert/common/interfaces"
	"github.com/DocCert/DocCert/common/null"
	"github.com/DocCert/DocCert/common/schema"
)

var (
	ErrNoID         = errors.New("a document id is required")
	ErrFileTooLarge = errors.New("file exceeds the maximum document size")
	ErrEmptyFile    = errors.New("file is empty")
)

type Service struct {
	comms       *communications.Communications
	explorerURL string
	hasher      *hasher.Hasher
	logger      interfaces.Logger
}

type Option func(*Service) error

// New returns a Service. The communications object should send requests
// through the session transport; only Verify and Health work without it.
func New(options ...Option) (*Service, error) {
	s := &Service{
		explorerURL: schema.DefaultExplorerURL,
		hasher:      hasher.New(hasher.WithCache(5 * time.Minute)),
		logger:      null.Logger(),
	}
	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}

	if s.comms == nil {
		return nil, errors.New("communications are required")
	}
	return s, nil
}

func WithCommunications(comms *communications.Communications) Option {
	return func(s *Service) error {
		if comms == nil {
			return errors.New("communications are nil")
		}
		s.comms = comms
		return nil
	}
}

// WithExplorerURL sets the prefix that a transaction hash is appended to
// when linking a certification
func WithExplorerURL(explorer string) Option {
	return func(s *Service) error {
		u, err := url.Parse(explorer)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid explorer URL: %q", explorer)
		}
		if !strings.HasSuffix(explorer, "/") {
			explorer += "/"
		}
		s.explorerURL = explorer
		return nil
	}
}

func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) error {
		if logger == nil {
			return errors.New("logger is nil")
		}
		s.logger = logger
		return nil
	}
}

// ExplorerURL returns the explorer link for a ledger transaction
func (s *Service) ExplorerURL(txHash string) string {
	if txHash == "" {
		return ""
	}
	return s.explorerURL + url.PathEscape(txHash)
}

// Health returns the raw health document of the document service
func (s *Service) Health(ctx context.Context) (map[string]any, error) {
	_, data, err := s.comms.Get(ctx, schema.EndpointHealth)
	if err != nil {
		return nil, fmt.Errorf("health check failed: %w", err)
	}

	health := make(map[string]any)
	if err = json.Unmarshal(data, &health); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return health, nil
}

func documentID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrNoID
	}
	return url.PathEscape(id), nil
}

func decodeDocument(data []byte) (*schema.DocumentEnvelope, error) {
	var env schema.DocumentEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return &env, nil
}

/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package documents

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/DocCert/DocCert/common/fields"
	"github.com/DocCert/DocCert/common/schema"
)

// List returns the documents owned by the current user
func (s *Service) List(ctx context.Context) ([]schema.Document, error) {
	_, data, err := s.comms.Get(ctx, schema.EndpointDocuments)
	if err != nil {
		return nil, err
	}

	var env schema.DocumentListEnvelope
	if err = json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if env.Data.Documents == nil {
		return []schema.Document{}, nil
	}
	return env.Data.Documents, nil
}

func (s *Service) Get(ctx context.Context, id string) (*schema.Document, error) {
	id, err := documentID(id)
	if err != nil {
		return nil, err
	}

	_, data, err := s.comms.Get(ctx, schema.EndpointDocument(id))
	if err != nil {
		return nil, err
	}

	env, err := decodeDocument(data)
	if err != nil {
		return nil, err
	}
	return &env.Data.Document, nil
}

// Certify asks the service to record the document hash on the ledger
func (s *Service) Certify(ctx context.Context, id string) (*schema.CertifyResult, error) {
	id, err := documentID(id)
	if err != nil {
		return nil, err
	}

	_, data, err := s.comms.Post(ctx, schema.EndpointCertify(id), nil)
	if err != nil {
		s.logger.Warning(5102, "certification failed", fields.NewFields(
			fields.NewField("id", id),
			fields.NewField("error", err.Error())))
		return nil, err
	}

	env, err := decodeDocument(data)
	if err != nil {
		return nil, err
	}

	doc := env.Data.Document
	s.logger.Info(5103, "document certified", fields.NewFields(
		fields.NewField("id", doc.ID),
		fields.NewField("tx", doc.XRPTxHash)))

	return &schema.CertifyResult{
		Document: doc,
		Transaction: schema.Transaction{
			Hash:        doc.XRPTxHash,
			ExplorerURL: s.ExplorerURL(doc.XRPTxHash),
		},
		Message: env.Message,
	}, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id, err := documentID(id)
	if err != nil {
		return err
	}

	if _, _, err = s.comms.Delete(ctx, schema.EndpointDocument(id)); err != nil {
		return err
	}
	s.logger.Info(5104, "document deleted", fields.NewFields(fields.NewField("id", id)))
	return nil
}

// Verifications returns the verification history of a document
func (s *Service) Verifications(ctx context.Context, id string) ([]schema.Verification, error) {
	id, err := documentID(id)
	if err != nil {
		return nil, err
	}

	_, data, err := s.comms.Get(ctx, schema.EndpointVerifications(id))
	if err != nil {
		return nil, err
	}

	list := make([]schema.Verification, 0)
	if err = json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return list, nil
}

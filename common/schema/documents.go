/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

// Document is a file held by the document service. BlockchainStatus is one
// of StatusPending, StatusCertified or StatusFailed.
type Document struct {
	ID                string   `json:"_id" yaml:"id"`
	Filename          string   `json:"filename" yaml:"filename"`
	OriginalName      string   `json:"originalName" yaml:"originalName"`
	FileType          string   `json:"fileType" yaml:"fileType"`
	FileSize          int64    `json:"fileSize" yaml:"fileSize"`
	FileHash          string   `json:"fileHash" yaml:"fileHash"`
	BlockchainStatus  string   `json:"blockchainStatus" yaml:"blockchainStatus"`
	XRPTxHash         string   `json:"xrpTxHash,omitempty" yaml:"xrpTxHash,omitempty"`
	XRPLedgerIndex    int64    `json:"xrpLedgerIndex,omitempty" yaml:"xrpLedgerIndex,omitempty"`
	CertifiedAt       string   `json:"certifiedAt,omitempty" yaml:"certifiedAt,omitempty"`
	VerificationCount int      `json:"verificationCount,omitempty" yaml:"verificationCount,omitempty"`
	LastVerifiedAt    string   `json:"lastVerifiedAt,omitempty" yaml:"lastVerifiedAt,omitempty"`
	CreatedAt         string   `json:"createdAt" yaml:"createdAt"`
	UpdatedAt         string   `json:"updatedAt" yaml:"updatedAt"`
	Description       string   `json:"description,omitempty" yaml:"description,omitempty"`
	Tags              []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// DocumentEnvelope wraps single document responses (get, upload, certify)
type DocumentEnvelope struct {
	Message string `json:"message"`
	Data    struct {
		Document Document `json:"document"`
	} `json:"data"`
}

// DocumentListEnvelope wraps the document list response
type DocumentListEnvelope struct {
	Data struct {
		Documents []Document `json:"documents"`
	} `json:"data"`
}

// UploadResult is what the client returns after an upload
type UploadResult struct {
	Document Document `json:"document" yaml:"document"`
	Message  string   `json:"message" yaml:"message"`
}

// Transaction identifies the ledger transaction that certified a document
type Transaction struct {
	Hash        string `json:"hash" yaml:"hash"`
	ExplorerURL string `json:"explorerUrl" yaml:"explorerUrl"`
}

// CertifyResult is what the client returns after a certification
type CertifyResult struct {
	Document    Document    `json:"document" yaml:"document"`
	Transaction Transaction `json:"transaction" yaml:"transaction"`
	Message     string      `json:"message" yaml:"message"`
}

// VerifyResponse is returned by the public verify endpoint
type VerifyResponse struct {
	Exists   bool      `json:"exists" yaml:"exists"`
	Document *Document `json:"document,omitempty" yaml:"document,omitempty"`
	Message  string    `json:"message" yaml:"message"`
}

// Verification is a single entry of a document's verification history.
// The service does not publish a fixed shape, so unknown fields are kept.
type Verification map[string]any

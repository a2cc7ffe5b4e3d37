/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

// Authentication service endpoints
const (
	EndpointLogin    = "/auth/login"
	EndpointRegister = "/auth/register"
	EndpointRefresh  = "/auth/refresh"
	EndpointLogout   = "/auth/logout"
	EndpointProfile  = "/auth/profile"
	EndpointHealth   = "/health"
)

// Document service endpoints
const (
	EndpointDocuments      = "/documents"
	EndpointDocumentUpload = "/documents/upload"
	EndpointVerify         = "/verify"
)

// Multipart field carrying the file for upload and verify
const DocumentFormField = "document"

// Blockchain certification states reported by the document service
const (
	StatusPending   = "pending"
	StatusCertified = "certified"
	StatusFailed    = "failed"
)

// DefaultExplorerURL is the ledger explorer used to link certification transactions
const DefaultExplorerURL = "https://testnet.xrpl.org/transactions/"

// EndpointDocument returns the path of a single document
func EndpointDocument(id string) string {
	return EndpointDocuments + "/" + id
}

// EndpointCertify returns the path that certifies a document on the ledger
func EndpointCertify(id string) string {
	return EndpointDocument(id) + "/certify"
}

func EndpointDownload(id string) string {
	return EndpointDocument(id) + "/download"
}

func EndpointVerifications(id string) string {
	return EndpointDocument(id) + "/verifications"
}

// MaxDocumentSize is the largest file the document service accepts
const MaxDocumentSize = 10 << 20

/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package documents

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DocCert/DocCert/cli/communications"
	"github.com/DocCert/DocCert/cli/credentials"
	"github.com/DocCert/DocCert/cli/session"
	"github.com/DocCert/DocCert/common/schema"
)

var pdf = []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\ntrailer\n<<>>\n%%EOF\n")

type upload struct {
	field       string
	filename    string
	contentType string
	data        []byte
}

type docServer struct {
	mu       sync.Mutex
	uploads  []upload
	auth     []string
	deleted  []string
	recorded string
}

func (d *docServer) record(req *http.Request) {
	d.mu.Lock()
	d.auth = append(d.auth, req.Header.Get("Authorization"))
	d.mu.Unlock()
}

func (d *docServer) readUpload(req *http.Request) (upload, error) {
	reader, err := req.MultipartReader()
	if err != nil {
		return upload{}, err
	}
	part, err := reader.NextPart()
	if err != nil {
		return upload{}, err
	}
	data, err := io.ReadAll(part)
	if err != nil {
		return upload{}, err
	}
	u := upload{
		field:       part.FormName(),
		filename:    part.FileName(),
		contentType: part.Header.Get("Content-Type"),
		data:        data,
	}
	d.mu.Lock()
	d.uploads = append(d.uploads, u)
	d.mu.Unlock()
	return u, nil
}

func document(id, hash string) schema.Document {
	return schema.Document{
		ID:               id,
		Filename:         id + ".pdf",
		OriginalName:     "contract.pdf",
		FileType:         "application/pdf",
		FileHash:         hash,
		BlockchainStatus: schema.StatusPending,
		CreatedAt:        "2026-01-02T03:04:05Z",
		UpdatedAt:        "2026-01-02T03:04:05Z",
	}
}

func (d *docServer) router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/documents/upload", func(w http.ResponseWriter, req *http.Request) {
		d.record(req)
		u, err := d.readUpload(req)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": err.Error()})
			return
		}
		sum := sha256.Sum256(u.data)
		env := map[string]any{
			"message": "Document uploaded successfully",
			"data":    map[string]any{"document": document("d1", hex.EncodeToString(sum[:]))},
		}
		writeJSON(w, http.StatusCreated, env)
	}).Methods(http.MethodPost)

	r.HandleFunc("/documents", func(w http.ResponseWriter, req *http.Request) {
		d.record(req)
		writeJSON(w, http.StatusOK, map[string]any{
			"data": map[string]any{"documents": []schema.Document{document("d1", "aa"), document("d2", "bb")}},
		})
	}).Methods(http.MethodGet)

	r.HandleFunc("/documents/{id}", func(w http.ResponseWriter, req *http.Request) {
		d.record(req)
		id := mux.Vars(req)["id"]
		if id == "missing" {
			writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "message": "Document not found"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{"document": document(id, "aa")}})
	}).Methods(http.MethodGet)

	r.HandleFunc("/documents/{id}", func(w http.ResponseWriter, req *http.Request) {
		d.record(req)
		d.mu.Lock()
		d.deleted = append(d.deleted, mux.Vars(req)["id"])
		d.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	}).Methods(http.MethodDelete)

	r.HandleFunc("/documents/{id}/certify", func(w http.ResponseWriter, req *http.Request) {
		d.record(req)
		doc := document(mux.Vars(req)["id"], "aa")
		doc.BlockchainStatus = schema.StatusCertified
		doc.XRPTxHash = "ABC123"
		doc.XRPLedgerIndex = 4242
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Document certified",
			"data":    map[string]any{"document": doc},
		})
	}).Methods(http.MethodPost)

	r.HandleFunc("/documents/{id}/download", func(w http.ResponseWriter, req *http.Request) {
		d.record(req)
		if mux.Vars(req)["id"] == "missing" {
			writeJSON(w, http.StatusNotFound, map[string]any{"message": "Document not found"})
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(pdf)
	}).Methods(http.MethodGet)

	r.HandleFunc("/documents/{id}/verifications", func(w http.ResponseWriter, req *http.Request) {
		d.record(req)
		writeJSON(w, http.StatusOK, []map[string]any{
			{"verifiedAt": "2026-02-01T00:00:00Z", "result": true},
		})
	}).Methods(http.MethodGet)

	r.HandleFunc("/verify", func(w http.ResponseWriter, req *http.Request) {
		u, err := d.readUpload(req)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": err.Error()})
			return
		}
		d.mu.Lock()
		recorded := d.recorded
		d.mu.Unlock()
		if recorded == "" {
			writeJSON(w, http.StatusOK, schema.VerifyResponse{Exists: false, Message: "Document not found"})
			return
		}
		doc := document("d1", recorded)
		doc.OriginalName = u.filename
		writeJSON(w, http.StatusOK, schema.VerifyResponse{Exists: true, Document: &doc, Message: "Document verified"})
	}).Methods(http.MethodPost)

	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "service": "document"})
	}).Methods(http.MethodGet)
	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newService(t *testing.T, options ...Option) (*Service, *docServer) {
	t.Helper()
	backend := &docServer{}
	srv := httptest.NewServer(backend.router())
	t.Cleanup(srv.Close)

	creds, err := credentials.New(credentials.NewMemoryStore())
	require.NoError(t, err)
	require.NoError(t, creds.SetPair("A1", "R1"))

	refresher := session.RefresherFunc(func(context.Context, string) (schema.RefreshResponse, error) {
		return schema.RefreshResponse{}, assert.AnError
	})
	manager, err := session.New(session.WithCredentials(creds), session.WithRefresher(refresher))
	require.NoError(t, err)

	comms, err := communications.New(
		communications.WithBaseURL(srv.URL),
		communications.WithTransport(manager.Transport(nil)))
	require.NoError(t, err)

	s, err := New(append([]Option{WithCommunications(comms)}, options...)...)
	require.NoError(t, err)
	return s, backend
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0600))
	return path
}

func TestNew(t *testing.T) {
	_, err := New()
	assert.Error(t, err)

	comms, err := communications.New(communications.WithBaseURL("http://localhost:3003"))
	require.NoError(t, err)

	_, err = New(WithCommunications(comms), WithExplorerURL("ftp://example.com"))
	assert.Error(t, err)

	s, err := New(WithCommunications(comms), WithExplorerURL("https://livenet.xrpl.org/transactions"))
	require.NoError(t, err)
	assert.Equal(t, "https://livenet.xrpl.org/transactions/ABC", s.ExplorerURL("ABC"))
	assert.Empty(t, s.ExplorerURL(""))
}

func TestUpload(t *testing.T) {
	s, backend := newService(t)
	path := writeFile(t, "contract.pdf", pdf)

	result, err := s.Upload(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "d1", result.Document.ID)
	assert.Equal(t, "Document uploaded successfully", result.Message)

	backend.mu.Lock()
	defer backend.mu.Unlock()
	require.Len(t, backend.uploads, 1)
	u := backend.uploads[0]
	assert.Equal(t, schema.DocumentFormField, u.field)
	assert.Equal(t, "contract.pdf", u.filename)
	assert.Equal(t, "application/pdf", u.contentType)
	assert.Equal(t, pdf, u.data)
	assert.Equal(t, []string{"Bearer A1"}, backend.auth)
}

func TestUploadLimits(t *testing.T) {
	s, backend := newService(t)
	ctx := context.Background()

	_, err := s.Upload(ctx, writeFile(t, "empty.txt", nil))
	assert.ErrorIs(t, err, ErrEmptyFile)

	_, err = s.UploadBytes(ctx, "big.bin", make([]byte, schema.MaxDocumentSize+1))
	assert.ErrorIs(t, err, ErrFileTooLarge)

	_, err = s.Upload(ctx, t.TempDir())
	assert.Error(t, err)

	_, err = s.Upload(ctx, filepath.Join(t.TempDir(), "nope.pdf"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	backend.mu.Lock()
	defer backend.mu.Unlock()
	assert.Empty(t, backend.uploads)
}

func TestListAndGet(t *testing.T) {
	s, _ := newService(t)
	ctx := context.Background()

	docs, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "d2", docs[1].ID)
	assert.Equal(t, schema.StatusPending, docs[0].BlockchainStatus)

	doc, err := s.Get(ctx, "d7")
	require.NoError(t, err)
	assert.Equal(t, "d7", doc.ID)

	_, err = s.Get(ctx, "missing")
	var apiErr *communications.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Document not found", apiErr.Message)

	_, err = s.Get(ctx, "  ")
	assert.ErrorIs(t, err, ErrNoID)
}

func TestCertify(t *testing.T) {
	s, _ := newService(t)

	result, err := s.Certify(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, schema.StatusCertified, result.Document.BlockchainStatus)
	assert.Equal(t, "ABC123", result.Transaction.Hash)
	assert.Equal(t, "https://testnet.xrpl.org/transactions/ABC123", result.Transaction.ExplorerURL)
	assert.Equal(t, "Document certified", result.Message)
	assert.EqualValues(t, 4242, result.Document.XRPLedgerIndex)
}

func TestDownload(t *testing.T) {
	s, _ := newService(t)
	ctx := context.Background()
	dest := filepath.Join(t.TempDir(), "out.pdf")

	n, err := s.Download(ctx, "d1", dest)
	require.NoError(t, err)
	assert.EqualValues(t, len(pdf), n)
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, pdf, data)

	// Existing files are left alone
	_, err = s.Download(ctx, "d1", dest)
	assert.ErrorIs(t, err, os.ErrExist)

	failed := filepath.Join(t.TempDir(), "missing.pdf")
	_, err = s.Download(ctx, "missing", failed)
	var apiErr *communications.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.NoFileExists(t, failed)
}

func TestDeleteAndVerifications(t *testing.T) {
	s, backend := newService(t)
	ctx := context.Background()

	require.NoError(t, s.Delete(ctx, "d9"))
	backend.mu.Lock()
	assert.Equal(t, []string{"d9"}, backend.deleted)
	backend.mu.Unlock()
	assert.ErrorIs(t, s.Delete(ctx, ""), ErrNoID)

	list, err := s.Verifications(ctx, "d1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, true, list[0]["result"])
}

func TestVerifyFile(t *testing.T) {
	s, backend := newService(t)
	ctx := context.Background()
	path := writeFile(t, "contract.pdf", pdf)
	sum := sha256.Sum256(pdf)
	local := hex.EncodeToString(sum[:])

	report, err := s.VerifyFile(ctx, path)
	require.NoError(t, err)
	assert.False(t, report.Exists)
	assert.Nil(t, report.HashMatches)
	assert.Equal(t, local, report.LocalHash)

	backend.mu.Lock()
	backend.recorded = local
	backend.mu.Unlock()

	report, err = s.VerifyFile(ctx, path)
	require.NoError(t, err)
	assert.True(t, report.Exists)
	require.NotNil(t, report.HashMatches)
	assert.True(t, *report.HashMatches)
	assert.Equal(t, "contract.pdf", report.Document.OriginalName)

	backend.mu.Lock()
	backend.recorded = "00ff"
	backend.mu.Unlock()

	report, err = s.VerifyFile(ctx, path)
	require.NoError(t, err)
	require.NotNil(t, report.HashMatches)
	assert.False(t, *report.HashMatches)
}

func TestHealth(t *testing.T) {
	s, _ := newService(t)
	health, err := s.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "document", health["service"])
}

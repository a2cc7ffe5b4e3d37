/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package global

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DocCert/DocCert/cli/auth"
	"github.com/DocCert/DocCert/cli/config"
	"github.com/DocCert/DocCert/cli/credentials"
	"github.com/DocCert/DocCert/common/schema"
)

func rejectAll(t *testing.T) string {
	t.Helper()
	r := mux.NewRouter()
	r.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Unauthorized"}`))
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv.URL
}

func testConfig(url string, debug bool) *config.Config {
	return &config.Config{
		AuthURL:     url,
		DocumentURL: url,
		Timeout:     2 * time.Second,
		ExplorerURL: schema.DefaultExplorerURL,
		Output:      "json",
		Debug:       debug,
	}
}

func TestNewValidates(t *testing.T) {
	_, err := New(nil, credentials.NewMemoryStore(), nil, nil)
	assert.Error(t, err)

	cfg := testConfig("http://localhost:3002", false)
	cfg.Output = "xml"
	_, err = New(cfg, credentials.NewMemoryStore(), nil, nil)
	assert.Error(t, err)

	cfg = testConfig("localhost:3002", false)
	_, err = New(cfg, credentials.NewMemoryStore(), nil, nil)
	assert.ErrorContains(t, err, "auth service")
}

func TestExpiredSessionIsReported(t *testing.T) {
	url := rejectAll(t)
	store := credentials.NewMemoryStore()
	var out, errOut bytes.Buffer

	r, err := New(testConfig(url, true), store, &out, &errOut)
	require.NoError(t, err)
	require.NoError(t, r.Manager.Credentials().SetSession("A1", "R1", schema.User{ID: "u1"}))
	require.Equal(t, auth.Authenticated, r.Auth.State())

	_, err = r.Documents.List(context.Background())
	require.Error(t, err)
	assert.Equal(t, auth.Anonymous, r.Auth.State())
	assert.Contains(t, errOut.String(), "Session expired, please log in again")

	require.NoError(t, r.Close())
	assert.Contains(t, errOut.String(), "doccert_session_expired_total{} 1")
	assert.Contains(t, errOut.String(), "doccert_session_refresh_total{result=failure} 1")
	assert.Empty(t, out.String())
}

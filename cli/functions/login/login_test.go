/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package login

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DocCert/DocCert/cli/auth"
	"github.com/DocCert/DocCert/cli/config"
	"github.com/DocCert/DocCert/cli/credentials"
	"github.com/DocCert/DocCert/cli/global"
	"github.com/DocCert/DocCert/cli/util"
	"github.com/DocCert/DocCert/common/schema"
)

func newRuntime(t *testing.T, cfg *config.Config) (*global.Runtime, *bytes.Buffer) {
	t.Helper()
	r := mux.NewRouter()
	r.HandleFunc(schema.EndpointLogin, func(w http.ResponseWriter, req *http.Request) {
		var body schema.LoginRequest
		_ = json.NewDecoder(req.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		if body.Password != "correct horse" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(schema.AuthResponse{
			User:         schema.User{ID: "u1", Email: body.Email, FullName: "Ada"},
			AccessToken:  "A1",
			RefreshToken: "R1",
		})
	}).Methods(http.MethodPost)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	cfg.AuthURL = srv.URL
	cfg.DocumentURL = srv.URL
	cfg.Timeout = 2 * time.Second
	cfg.ExplorerURL = schema.DefaultExplorerURL
	cfg.Output = "json"

	var out bytes.Buffer
	rt, err := global.New(cfg, credentials.NewMemoryStore(), &out, &bytes.Buffer{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rt.Close() })
	return rt, &out
}

func TestLoginPrompts(t *testing.T) {
	rt, out := newRuntime(t, &config.Config{})
	prompt := util.NewPrompterWith(strings.NewReader("ada@example.com\ncorrect horse\n"), &bytes.Buffer{}, -1)

	require.NoError(t, execute(context.Background(), rt, prompt, "", ""))
	assert.Equal(t, auth.Authenticated, rt.Auth.State())
	assert.Contains(t, out.String(), `"email": "ada@example.com"`)
}

func TestLoginFromConfig(t *testing.T) {
	rt, _ := newRuntime(t, &config.Config{Email: "ada@example.com", Password: "correct horse"})
	prompt := util.NewPrompterWith(strings.NewReader(""), &bytes.Buffer{}, -1)

	require.NoError(t, execute(context.Background(), rt, prompt, "", ""))
	assert.Equal(t, auth.Authenticated, rt.Auth.State())
}

func TestLoginFlagsWin(t *testing.T) {
	rt, _ := newRuntime(t, &config.Config{Email: "ada@example.com", Password: "correct horse"})
	prompt := util.NewPrompterWith(strings.NewReader(""), &bytes.Buffer{}, -1)

	err := execute(context.Background(), rt, prompt, "ada@example.com", "wrong")
	assert.ErrorContains(t, err, "Invalid credentials")
	assert.Equal(t, auth.Anonymous, rt.Auth.State())
}

func TestLoginNoInput(t *testing.T) {
	rt, _ := newRuntime(t, &config.Config{})
	prompt := util.NewPrompterWith(strings.NewReader(""), &bytes.Buffer{}, -1)

	err := execute(context.Background(), rt, prompt, "", "")
	assert.ErrorIs(t, err, util.ErrNoInput)
}

/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var variables = []string{
	"AUTH_URL", "DOCUMENT_URL", "TIMEOUT", "EXPLORER_URL", "CREDENTIAL_FILE",
	"LOG_FILE", "OUTPUT", "DEBUG", "EMAIL", "PASSWORD",
}

// clearEnv unsets every variable for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range variables {
		name := Prefix + "_" + v
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := LoadFile(filepath.Join(home, "missing"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3002", cfg.AuthURL)
	assert.Equal(t, "http://localhost:3003", cfg.DocumentURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "https://testnet.xrpl.org/transactions/", cfg.ExplorerURL)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, filepath.Join(home, Credentials), cfg.CredentialFile)
	assert.False(t, cfg.Debug)
}

func TestEnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, EnvFile)
	content := "DOCCERT_AUTH_URL=https://auth.example.com\n" +
		"DOCCERT_TIMEOUT=3s\n" +
		"DOCCERT_OUTPUT=YAML\n" +
		"DOCCERT_EMAIL=ada@example.com\n" +
		"DOCCERT_CREDENTIAL_FILE=" + filepath.Join(dir, "creds.db") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	// The environment wins over the file
	t.Setenv("DOCCERT_TIMEOUT", "7s")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://auth.example.com", cfg.AuthURL)
	assert.Equal(t, 7*time.Second, cfg.Timeout)
	assert.Equal(t, "yaml", cfg.Output)
	assert.Equal(t, "ada@example.com", cfg.Email)
	assert.Equal(t, filepath.Join(dir, "creds.db"), cfg.CredentialFile)
}

func TestInvalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())

	t.Setenv("DOCCERT_TIMEOUT", "soon")
	_, err := LoadFile("")
	assert.Error(t, err)

	t.Setenv("DOCCERT_TIMEOUT", "0s")
	_, err = LoadFile("")
	assert.ErrorContains(t, err, "TIMEOUT")

	t.Setenv("DOCCERT_TIMEOUT", "1s")
	t.Setenv("DOCCERT_OUTPUT", "xml")
	_, err = LoadFile("")
	assert.ErrorContains(t, err, "OUTPUT")
}

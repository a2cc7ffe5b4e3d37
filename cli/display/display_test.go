/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package display

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DocCert/DocCert/common/schema"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": JSON, "JSON": JSON, "yaml": YAML, " yml ": YAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestPrint(t *testing.T) {
	user := schema.User{ID: "u1", Email: "a@b.com", FullName: "Ada"}

	var out bytes.Buffer
	require.NoError(t, New(&out, nil, JSON).Print(user))
	assert.Contains(t, out.String(), `"fullName": "Ada"`)

	out.Reset()
	require.NoError(t, New(&out, nil, YAML).Print(user))
	assert.Contains(t, out.String(), "fullName: Ada\n")
	assert.NotContains(t, out.String(), "role")
}

func TestMessages(t *testing.T) {
	var out, errOut bytes.Buffer
	p := New(&out, &errOut, JSON)
	p.Message("Logged in as %s", "ada")
	assert.Equal(t, "Logged in as ada\n", errOut.String())
	assert.Empty(t, out.String())

	saved := Stderr
	defer func() { Stderr = saved }()
	errOut.Reset()
	Stderr = &errOut

	ErrorWrapper(nil)
	assert.Empty(t, errOut.String())
	ErrorWrapper(errors.New("boom"))
	assert.Equal(t, "Error: boom\n", errOut.String())
}

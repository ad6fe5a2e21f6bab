package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestQueryCommand(t *testing.T) {
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		gotBody = body
		w.Write([]byte(`{"result":["bob"]}`))
	}))
	defer server.Close()

	out, err := runCommand(t, "query", "g.V('alice').Out('follows').All()", "--url", server.URL)
	require.NoError(t, err)
	assert.Equal(t, "g.V('alice').Out('follows').All()", string(gotBody))
	assert.Contains(t, out, `"bob"`)
}

func TestWriteCommand(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"result":"Successfully wrote 1 quads."}`))
	}))
	defer server.Close()

	quadFile := filepath.Join(t.TempDir(), "quads.json")
	require.NoError(t, os.WriteFile(quadFile, []byte(
		`[{"subject":"alice","predicate":"follows","object":"bob"}]`,
	), 0o600))

	out, err := runCommand(t, "write", quadFile, "--url", server.URL)
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/write", gotPath)
	assert.Contains(t, out, "Successfully wrote")
}

func TestWriteCommandRejectsMalformedQuads(t *testing.T) {
	quadFile := filepath.Join(t.TempDir(), "quads.json")
	require.NoError(t, os.WriteFile(quadFile, []byte(`[{"subject":"alice"}]`), 0o600))

	_, err := runCommand(t, "write", quadFile, "--url", "http://localhost:0")
	assert.Error(t, err, "invalid quads must be rejected before any request")
}

package graphley_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/graphley"
	"github.com/syssam/graphley/gremlin"
	"github.com/syssam/graphley/quad"
)

func TestClientQuery(t *testing.T) {
	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/query/gremlin", r.URL.Path)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		gotBody = string(body)
		w.Write([]byte(`{"result":["bob"]}`))
	}))
	defer server.Close()

	client, err := graphley.NewClient(graphley.WithURL(server.URL))
	require.NoError(t, err)

	t.Run("Chain", func(t *testing.T) {
		g := gremlin.NewGraph()
		resp, err := client.Query(context.Background(), g.V("alice").Out("follows").All())
		require.NoError(t, err)
		assert.Equal(t, "g.V('alice').Out('follows').All()", gotBody)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var decoded struct {
			Result []string `json:"result"`
		}
		require.NoError(t, resp.Decode(&decoded))
		assert.Equal(t, []string{"bob"}, decoded.Result)
	})

	t.Run("RawString", func(t *testing.T) {
		_, err := client.Query(context.Background(), "g.V().All()")
		require.NoError(t, err)
		assert.Equal(t, "g.V().All()", gotBody)
	})

	t.Run("UnsupportedType", func(t *testing.T) {
		_, err := client.Query(context.Background(), 42)
		assert.Error(t, err)
	})
}

func TestClientQueryBuilderError(t *testing.T) {
	var requests int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
	}))
	defer server.Close()

	client, err := graphley.NewClient(graphley.WithURL(server.URL))
	require.NoError(t, err)

	g := gremlin.NewGraph()
	broken := g.V("alice").Follow(g.V("bob")) // wrong chain variant

	_, err = client.Query(context.Background(), broken)
	require.Error(t, err)
	assert.True(t, gremlin.IsInvalidParameter(err))
	assert.Equal(t, int64(0), atomic.LoadInt64(&requests), "a broken chain must fail before any request")
}

func TestClientWrite(t *testing.T) {
	var gotPath string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"result":"Successfully wrote 2 quads."}`))
	}))
	defer server.Close()

	client, err := graphley.NewClient(graphley.WithURL(server.URL))
	require.NoError(t, err)

	quads := quad.NewSet(
		quad.New("Alice", "follows", "Bob"),
		quad.NewLabeled("Bob", "follows", "Charlie", "Demo"),
	)
	body, err := client.Write(context.Background(), quads)
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/write", gotPath)
	assert.Contains(t, string(body), "Successfully wrote")

	gold := goldie.New(t)
	gold.Assert(t, "write_payload", gotBody)
}

func TestClientDelete(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"result":"Successfully deleted 1 quads."}`))
	}))
	defer server.Close()

	client, err := graphley.NewClient(graphley.WithURL(server.URL))
	require.NoError(t, err)

	_, err = client.Delete(context.Background(), quad.NewSet(quad.New("a", "p", "o")))
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/delete", gotPath)
}

func TestClientEmptyQuadSet(t *testing.T) {
	client, err := graphley.NewClient()
	require.NoError(t, err)

	_, err = client.Write(context.Background(), quad.NewSet())
	assert.ErrorIs(t, err, graphley.ErrEmptyQuadSet)

	_, err = client.Delete(context.Background(), nil)
	assert.ErrorIs(t, err, graphley.ErrEmptyQuadSet)
}

func TestClientAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"syntax error"}`))
	}))
	defer server.Close()

	client, err := graphley.NewClient(graphley.WithURL(server.URL))
	require.NoError(t, err)

	_, err = client.Query(context.Background(), "g.V().Bogus()")
	require.Error(t, err)
	assert.True(t, graphley.IsAPIError(err))

	var apiErr *graphley.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "syntax error", apiErr.Message)
}

func TestClientRequestID(t *testing.T) {
	var gotID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, err := graphley.NewClient(graphley.WithURL(server.URL))
	require.NoError(t, err)

	_, err = client.Query(context.Background(), "g.V().All()")
	require.NoError(t, err)

	_, err = uuid.Parse(gotID)
	assert.NoError(t, err, "every request carries a UUID request id")
}

func TestClientMetrics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	registry := prometheus.NewRegistry()
	client, err := graphley.NewClient(
		graphley.WithURL(server.URL),
		graphley.WithMetrics(registry),
	)
	require.NoError(t, err)

	_, err = client.Query(context.Background(), "g.V().All()")
	require.NoError(t, err)

	families, err := registry.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 2, "request counter and duration histogram")
}

func TestNewClientValidation(t *testing.T) {
	_, err := graphley.NewClient(graphley.WithURL(""))
	assert.Error(t, err)

	_, err = graphley.NewClient(graphley.WithVersion(""))
	assert.Error(t, err)
}

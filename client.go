package graphley

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/syssam/graphley/quad"
)

// ErrEmptyQuadSet is returned by Write and Delete when the payload holds
// no quads; the write endpoint rejects empty arrays, so the request is
// refused before it is sent.
var ErrEmptyQuadSet = errors.New("graphley: quad set is empty")

// Query is any value that serializes itself into final query text,
// typically a *gremlin.Vertex.
type Query interface {
	Build() (string, error)
}

// Response is a decoded reply from the query endpoint.
type Response struct {
	// StatusCode is the HTTP status the endpoint answered with.
	StatusCode int
	// Body is the raw decoded JSON reply.
	Body json.RawMessage
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

// Client sends serialized queries and quad payloads to a graph database's
// HTTP API. It performs exactly one request per call.
//
// A Client is safe for concurrent use.
type Client struct {
	queryURL  string
	writeURL  string
	deleteURL string

	httpClient *http.Client
	logger     *zap.Logger
	metrics    *clientMetrics
}

// NewClient returns a Client for the database at the configured URL. With
// no options it targets http://localhost:64210 with API version v1 and a
// 10s request timeout.
func NewClient(opts ...Option) (*Client, error) {
	s := settings{
		url:     DefaultURL,
		version: DefaultVersion,
		timeout: defaultTimeout,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.url == "" {
		return nil, errors.New("graphley: url cannot be empty")
	}
	if s.version == "" {
		return nil, errors.New("graphley: api version cannot be empty")
	}
	if s.httpClient == nil {
		s.httpClient = &http.Client{Timeout: s.timeout}
	}

	c := &Client{
		queryURL:   fmt.Sprintf("%s/api/%s/query/gremlin", s.url, s.version),
		writeURL:   fmt.Sprintf("%s/api/%s/write", s.url, s.version),
		deleteURL:  fmt.Sprintf("%s/api/%s/delete", s.url, s.version),
		httpClient: s.httpClient,
		logger:     s.logger,
	}
	if s.registerer != nil {
		m, err := newClientMetrics(s.registerer)
		if err != nil {
			return nil, err
		}
		c.metrics = m
	}
	return c, nil
}

// NewClientFromConfig builds a Client from a validated Config. Options are
// applied on top of the configured values.
func NewClientFromConfig(cfg *Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	base := []Option{
		WithURL(cfg.URL),
		WithVersion(cfg.Version),
		WithTimeout(time.Duration(cfg.Timeout)),
	}
	return NewClient(append(base, opts...)...)
}

// Query sends query text to the query endpoint and returns the decoded
// JSON reply. q is either the final query string or an unbuilt chain; a
// chain carrying a builder error fails here, before any request is made.
func (c *Client) Query(ctx context.Context, q any) (*Response, error) {
	text, err := queryText(q)
	if err != nil {
		return nil, err
	}
	body, status, err := c.post(ctx, "query", c.queryURL, []byte(text))
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("graphley: query endpoint returned invalid JSON")
	}
	return &Response{StatusCode: status, Body: body}, nil
}

// Write sends the set's JSON array payload to the write endpoint and
// returns the raw response body.
func (c *Client) Write(ctx context.Context, quads *quad.Set) ([]byte, error) {
	return c.sendQuads(ctx, "write", c.writeURL, quads)
}

// Delete sends the set's JSON array payload to the delete endpoint,
// removing the listed quads, and returns the raw response body.
func (c *Client) Delete(ctx context.Context, quads *quad.Set) ([]byte, error) {
	return c.sendQuads(ctx, "delete", c.deleteURL, quads)
}

func (c *Client) sendQuads(ctx context.Context, op, url string, quads *quad.Set) ([]byte, error) {
	if quads == nil || quads.Len() == 0 {
		return nil, ErrEmptyQuadSet
	}
	payload, err := json.Marshal(quads)
	if err != nil {
		return nil, fmt.Errorf("graphley: encode quads: %w", err)
	}
	body, _, err := c.post(ctx, op, url, payload)
	return body, err
}

// queryText resolves the supported query forms: final text, or a chain
// that still has to serialize itself.
func queryText(q any) (string, error) {
	switch q := q.(type) {
	case string:
		return q, nil
	case Query:
		return q.Build()
	default:
		return "", fmt.Errorf("graphley: unsupported query type %T", q)
	}
}

// post performs one POST and returns the response body and status. Bodies
// of failed responses (status >= 400) come back as an *APIError.
func (c *Client) post(ctx context.Context, op, url string, payload []byte) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, fmt.Errorf("graphley: build %s request: %w", op, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	c.logger.Debug("sending request",
		zap.String("op", op),
		zap.String("url", url),
		zap.String("request_id", requestID),
		zap.Int("payload_bytes", len(payload)),
	)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		c.metrics.observe(op, 0, elapsed)
		return nil, 0, fmt.Errorf("graphley: %s request: %w", op, err)
	}
	defer resp.Body.Close()
	c.metrics.observe(op, resp.StatusCode, elapsed)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("graphley: read %s response: %w", op, err)
	}

	c.logger.Debug("received response",
		zap.String("op", op),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", elapsed),
	)

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, resp.StatusCode, newAPIError(resp.StatusCode, body)
	}
	return body, resp.StatusCode, nil
}

package graphley

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Default connection values; Cayley listens on 64210 out of the box.
const (
	DefaultURL     = "http://localhost:64210"
	DefaultVersion = "v1"

	defaultTimeout = 10 * time.Second
)

// settings collects the values options mutate before the Client is built.
type settings struct {
	url        string
	version    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *zap.Logger
	registerer prometheus.Registerer
}

// Option configures a Client.
type Option func(*settings)

// WithURL sets the base address of the graph database.
func WithURL(url string) Option {
	return func(s *settings) { s.url = url }
}

// WithVersion sets the HTTP API version segment (default v1).
func WithVersion(version string) Option {
	return func(s *settings) { s.version = version }
}

// WithTimeout bounds each request. It is ignored when WithHTTPClient
// supplies a client of its own.
func WithTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client entirely.
func WithHTTPClient(hc *http.Client) Option {
	return func(s *settings) { s.httpClient = hc }
}

// WithLogger sets the logger used for request debug logging. The default
// is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics registers request count and duration metrics with reg and
// records every request against them.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(s *settings) { s.registerer = reg }
}

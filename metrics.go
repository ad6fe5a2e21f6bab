package graphley

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// clientMetrics instruments requests when the caller opts in via
// WithMetrics. A nil *clientMetrics is a no-op.
type clientMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newClientMetrics(reg prometheus.Registerer) (*clientMetrics, error) {
	m := &clientMetrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "graphley_requests_total",
				Help: "Total number of requests sent to the graph database",
			},
			[]string{"op", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "graphley_request_duration_seconds",
				Help:    "Duration of graph database requests in seconds",
				Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"op"},
		),
	}
	for _, collector := range []prometheus.Collector{m.requests, m.duration} {
		if err := reg.Register(collector); err != nil {
			return nil, fmt.Errorf("graphley: register metrics: %w", err)
		}
	}
	return m, nil
}

// observe records one request outcome. A zero status means the request
// never produced a response.
func (m *clientMetrics) observe(op string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.requests.WithLabelValues(op, label).Inc()
	m.duration.WithLabelValues(op).Observe(elapsed.Seconds())
}

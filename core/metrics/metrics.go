package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Signing outcomes recorded in the result label.
const (
	ResultOK          = "ok"
	ResultInvalid     = "invalid"
	ResultUnavailable = "unavailable"
	ResultError       = "error"
)

// Signing holds Prometheus metrics for signed URL generation.
type Signing struct {
	requests *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewSigning creates the signing metrics and registers them on reg.
// A nil reg leaves them unregistered.
func NewSigning(namespace string, reg prometheus.Registerer) *Signing {
	if namespace == "" {
		namespace = "card_assets"
	}

	s := &Signing{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "signed_url_requests_total",
				Help:      "Total signed URL requests by result",
			},
			[]string{"result"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "signed_url_duration_seconds",
				Help:      "Time spent producing a signed URL",
				Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
			},
		),
	}

	if reg != nil {
		reg.MustRegister(s.requests, s.duration)
	}
	return s
}

// Observe records one signing attempt. Safe on a nil receiver.
func (s *Signing) Observe(result string, elapsed time.Duration) {
	if s == nil {
		return
	}
	s.requests.WithLabelValues(result).Inc()
	s.duration.Observe(elapsed.Seconds())
}

// Requests returns the counter for a result, mainly for tests and health output.
func (s *Signing) Requests(result string) prometheus.Counter {
	return s.requests.WithLabelValues(result)
}

// Package metrics holds the Prometheus collectors envresolve exposes on the
// inspector's /metrics route.
package metrics

import (
	"strconv"
	"time"

	"github.com/MKhiriev/envresolve/internal/config"
	"github.com/MKhiriev/envresolve/internal/doctor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "envresolve"

// Outcome label values of resolutions_total.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics records resolution, inspector and doctor events into one registry.
type Metrics struct {
	registry *prometheus.Registry
	runtime  *prometheus.Registry

	resolutions     *prometheus.CounterVec
	configErrors    *prometheus.CounterVec
	warnings        prometheus.Gauge
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	checkStatus     *prometheus.GaugeVec
}

// New registers every collector in a fresh registry. The Go and process
// collectors live in a second registry that only the served view includes.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	runtime := prometheus.NewRegistry()
	runtime.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		runtime:  runtime,
		resolutions: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "resolutions_total",
				Help:      "Total number of env file resolutions",
			},
			[]string{"outcome"},
		),
		configErrors: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "config_errors_total",
				Help:      "Total number of configuration errors by kind",
			},
			[]string{"kind"},
		),
		warnings: f.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "warnings",
				Help:      "Number of warnings of the last successful resolution",
			},
		),
		requests: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "inspector_requests_total",
				Help:      "Total number of inspector requests",
			},
			[]string{"route", "status"},
		),
		requestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "inspector_request_duration_seconds",
				Help:      "Duration of inspector requests in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
			},
			[]string{"route"},
		),
		checkStatus: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "doctor_check_status",
				Help:      "Last doctor check status (1=healthy, 0=unhealthy)",
			},
			[]string{"check"},
		),
	}
}

// Gatherer is what /metrics serves: envresolve metrics plus runtime metrics.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return prometheus.Gatherers{m.registry, m.runtime}
}

// WriteTextfile writes the envresolve metrics, without runtime metrics, to
// path in the text exposition format. The file is replaced atomically.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

// RecordResolution counts one resolution. Every configuration error in err
// is counted by its kind.
func (m *Metrics) RecordResolution(err error, warnings int) {
	if err == nil {
		m.resolutions.WithLabelValues(OutcomeOK).Inc()
		m.warnings.Set(float64(warnings))
		return
	}

	m.resolutions.WithLabelValues(OutcomeError).Inc()
	for _, e := range config.Errors(err) {
		m.configErrors.WithLabelValues(e.Kind.String()).Inc()
	}
}

// RecordRequest records one inspector request.
func (m *Metrics) RecordRequest(route string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// RecordChecks sets the status gauge of every doctor check.
func (m *Metrics) RecordChecks(checks []doctor.Check) {
	for _, c := range checks {
		v := 0.0
		if c.OK {
			v = 1
		}
		m.checkStatus.WithLabelValues(c.Name).Set(v)
	}
}

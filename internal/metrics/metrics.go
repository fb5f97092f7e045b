// Package metrics records what one bootstrap run did, in Prometheus form.
//
// Each Recorder owns a private registry, so a run's numbers are never mixed
// with another's. The CLI can dump them for the node_exporter textfile
// collector with WriteTextfile.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "cytraco"

// Result label values.
const (
	ResultSuccess     = "success"
	ResultError       = "error"
	ResultReachable   = "reachable"
	ResultUnreachable = "unreachable"
)

// Recorder collects run metrics. A nil *Recorder ignores every call.
type Recorder struct {
	registry *prometheus.Registry

	scansTotal         *prometheus.CounterVec
	scanDevices        prometheus.Gauge
	reachabilityTotal  *prometheus.CounterVec
	promptsTotal       *prometheus.CounterVec
	configWritesTotal  *prometheus.CounterVec
	outcomesTotal      *prometheus.CounterVec
	bootstrapDurations prometheus.Histogram
}

// New returns a Recorder with all collectors registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),

		scansTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "scans_total",
				Help:      "BLE trainer scans by result",
			},
			[]string{"result"},
		),
		scanDevices: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "scan_devices",
				Help:      "Trainers found by the most recent scan",
			},
		),
		reachabilityTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reachability_checks_total",
				Help:      "Reachability probes of the configured trainer by result",
			},
			[]string{"result"},
		),
		promptsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "prompts_total",
				Help:      "Setup prompts answered, by prompt and choice",
			},
			[]string{"prompt", "choice"},
		),
		configWritesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "config_writes_total",
				Help:      "Configuration file writes by result",
			},
			[]string{"result"},
		),
		outcomesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bootstrap_outcomes_total",
				Help:      "Bootstrap runs by outcome",
			},
			[]string{"outcome"},
		),
		bootstrapDurations: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "bootstrap_duration_seconds",
				Help:      "Wall-clock duration of a bootstrap run",
				Buckets:   prometheus.ExponentialBuckets(0.5, 2, 10), // 0.5s to ~4min
			},
		),
	}

	r.registry.MustRegister(
		r.scansTotal,
		r.scanDevices,
		r.reachabilityTotal,
		r.promptsTotal,
		r.configWritesTotal,
		r.outcomesTotal,
		r.bootstrapDurations,
	)
	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// ScanCompleted records one scan and, on success, how many trainers it found.
func (r *Recorder) ScanCompleted(devices int, err error) {
	if r == nil {
		return
	}
	if err != nil {
		r.scansTotal.WithLabelValues(ResultError).Inc()
		return
	}
	r.scansTotal.WithLabelValues(ResultSuccess).Inc()
	r.scanDevices.Set(float64(devices))
}

// ReachabilityChecked records one reachability probe.
func (r *Recorder) ReachabilityChecked(reachable bool) {
	if r == nil {
		return
	}
	result := ResultUnreachable
	if reachable {
		result = ResultReachable
	}
	r.reachabilityTotal.WithLabelValues(result).Inc()
}

// Prompted records an answered prompt.
func (r *Recorder) Prompted(prompt, choice string) {
	if r == nil {
		return
	}
	r.promptsTotal.WithLabelValues(prompt, choice).Inc()
}

// ConfigWritten records one configuration save.
func (r *Recorder) ConfigWritten(err error) {
	if r == nil {
		return
	}
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	r.configWritesTotal.WithLabelValues(result).Inc()
}

// Finished records the run outcome and its duration.
func (r *Recorder) Finished(outcome string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.outcomesTotal.WithLabelValues(outcome).Inc()
	r.bootstrapDurations.Observe(elapsed.Seconds())
}

// WriteTextfile writes all metrics in the Prometheus text format.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, r.registry)
}

// SPDX-License-Identifier: MIT

package driver

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "tsp"

// Metrics holds the Prometheus collectors fed by Run and Player.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Steps    *prometheus.CounterVec
	Runs     *prometheus.CounterVec
	Length   *prometheus.GaugeVec
	Duration *prometheus.HistogramVec
}

// NewMetrics builds the collectors and registers them with reg.
// Panics if registration fails, like prometheus.MustRegister. A nil reg
// leaves the collectors unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "steps_total",
			Help:      "Number of solver steps performed.",
		}, []string{"algorithm"}),
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "runs_total",
			Help:      "Number of completed or cancelled runs.",
		}, []string{"algorithm", "outcome"}),
		Length: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "tour_length",
			Help:      "Length of the most recently reported tour.",
		}, []string{"algorithm"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of headless runs.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"algorithm"}),
	}
	if reg != nil {
		reg.MustRegister(m.Steps, m.Runs, m.Length, m.Duration)
	}

	return m
}

func (m *Metrics) observeRun(res Result) {
	if m == nil {
		return
	}
	kind := res.Kind.String()
	outcome := "finished"
	if !res.Finished {
		outcome = "cancelled"
	}
	m.Steps.WithLabelValues(kind).Add(float64(res.Steps))
	m.Runs.WithLabelValues(kind, outcome).Inc()
	m.Length.WithLabelValues(kind).Set(res.State.Length)
	m.Duration.WithLabelValues(kind).Observe(res.Elapsed.Seconds())
}

func (m *Metrics) observeTick(kind string, steps int, length float64) {
	if m == nil {
		return
	}
	if steps > 0 {
		m.Steps.WithLabelValues(kind).Add(float64(steps))
	}
	m.Length.WithLabelValues(kind).Set(length)
}

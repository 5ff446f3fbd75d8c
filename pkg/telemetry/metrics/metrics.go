// Package metrics exposes Prometheus metrics for taxonomy validation
// runs. It is consumed by the CLI's watch mode, which serves the
// registry over /metrics while revalidating manifests on change.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	taxErrors "privacyhq/meridian/pkg/taxonomy/errors"
	"privacyhq/meridian/pkg/taxonomy/resource"
)

// Collector records validation run outcomes.
//
// Metrics:
//   - meridian_taxonomy_validations_total: validation runs by result
//   - meridian_taxonomy_validation_duration_seconds: run duration
//   - meridian_taxonomy_resources: resources seen in the last run, by kind
//   - meridian_taxonomy_violations_total: violations by error type
type Collector struct {
	registry *prometheus.Registry

	validationsTotal   *prometheus.CounterVec
	validationDuration prometheus.Histogram
	resources          *prometheus.GaugeVec
	violationsTotal    *prometheus.CounterVec
}

// NewCollector creates a collector and registers its metrics with the
// given registry. If registry is nil a fresh one is created.
func NewCollector(registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	c := &Collector{
		registry: registry,

		validationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "meridian",
				Subsystem: "taxonomy",
				Name:      "validations_total",
				Help:      "Total number of taxonomy validation runs",
			},
			[]string{"result"},
		),

		validationDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "meridian",
				Subsystem: "taxonomy",
				Name:      "validation_duration_seconds",
				Help:      "Duration of taxonomy validation runs in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
			},
		),

		resources: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "meridian",
				Subsystem: "taxonomy",
				Name:      "resources",
				Help:      "Resources seen in the last validation run, by kind",
			},
			[]string{"kind"},
		),

		violationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "meridian",
				Subsystem: "taxonomy",
				Name:      "violations_total",
				Help:      "Total number of validation violations, by error type",
			},
			[]string{"type"},
		),
	}

	registry.MustRegister(
		c.validationsTotal,
		c.validationDuration,
		c.resources,
		c.violationsTotal,
	)

	return c
}

// Registry returns the Prometheus registry metrics are registered on.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// RecordRun records one validation run: its duration, the taxonomy
// that was checked (may be nil on parse failure), and the resulting
// error, if any.
func (c *Collector) RecordRun(t *resource.Taxonomy, duration time.Duration, err error) {
	c.validationDuration.Observe(duration.Seconds())

	if t != nil {
		for kind, count := range t.KindCounts() {
			c.resources.WithLabelValues(kind).Set(float64(count))
		}
	}

	if err == nil {
		c.validationsTotal.WithLabelValues("valid").Inc()
		return
	}

	c.validationsTotal.WithLabelValues("invalid").Inc()

	switch e := err.(type) {
	case *taxErrors.ErrorList:
		for _, violation := range e.Errors {
			c.violationsTotal.WithLabelValues(string(violation.Type)).Inc()
		}
	case *taxErrors.Error:
		c.violationsTotal.WithLabelValues(string(e.Type)).Inc()
	default:
		c.violationsTotal.WithLabelValues(string(taxErrors.ErrorTypeIO)).Inc()
	}
}

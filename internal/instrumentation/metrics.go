// Package instrumentation records per-operation outcomes and latency of the
// client's calls to the task manager in a private Prometheus registry.
//
// The registry is never served over HTTP; scenario reports read it back
// through [Metrics.Snapshot].
package instrumentation

import (
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Outcome labels a finished operation.
type Outcome string

const (
	OutcomeOK        Outcome = "ok"
	OutcomeTransport Outcome = "transport"
	OutcomeHTTP      Outcome = "http"
	OutcomeGraphQL   Outcome = "graphql"
	OutcomeNotFound  Outcome = "not_found"
	OutcomeDecode    Outcome = "decode"
	OutcomeRejected  Outcome = "rejected"
)

const namespace = "taskclient"

// Metrics owns the registry and collectors.
type Metrics struct {
	registry *prometheus.Registry
	calls    *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// OperationStat is one (operation, outcome) counter value.
type OperationStat struct {
	Operation string
	Outcome   Outcome
	Count     uint64
}

// NewMetrics registers the collectors in a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Task manager operations by outcome.",
		}, []string{"operation", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Latency of task manager operations.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"operation"}),
	}
	m.registry.MustRegister(m.calls, m.latency)
	return m
}

// Observe records one finished operation. A nil *Metrics is a no-op.
func (m *Metrics) Observe(operation string, outcome Outcome, took time.Duration) {
	if m == nil {
		return
	}
	m.calls.WithLabelValues(operation, string(outcome)).Inc()
	m.latency.WithLabelValues(operation).Observe(took.Seconds())
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Snapshot gathers the operation counters sorted by operation then outcome.
func (m *Metrics) Snapshot() ([]OperationStat, error) {
	if m == nil {
		return nil, nil
	}
	families, err := m.registry.Gather()
	if err != nil {
		return nil, err
	}

	var stats []OperationStat
	for _, family := range families {
		if family.GetName() != namespace+"_operations_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			stats = append(stats, OperationStat{
				Operation: label(metric, "operation"),
				Outcome:   Outcome(label(metric, "outcome")),
				Count:     uint64(metric.GetCounter().GetValue()),
			})
		}
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Operation != stats[j].Operation {
			return stats[i].Operation < stats[j].Operation
		}
		return stats[i].Outcome < stats[j].Outcome
	})
	return stats, nil
}

func label(metric *dto.Metric, name string) string {
	for _, pair := range metric.GetLabel() {
		if pair.GetName() == name {
			return pair.GetValue()
		}
	}
	return ""
}

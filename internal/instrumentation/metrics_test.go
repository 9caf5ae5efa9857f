package instrumentation

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Observe(t *testing.T) {
	m := NewMetrics()

	m.Observe("login", OutcomeOK, 20*time.Millisecond)
	m.Observe("login", OutcomeOK, 30*time.Millisecond)
	m.Observe("login", OutcomeHTTP, 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.calls.WithLabelValues("login", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.calls.WithLabelValues("login", "http")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.latency))
}

func TestMetrics_Snapshot(t *testing.T) {
	m := NewMetrics()
	m.Observe("task.get", OutcomeNotFound, time.Millisecond)
	m.Observe("auth.login", OutcomeOK, time.Millisecond)
	m.Observe("task.get", OutcomeOK, time.Millisecond)
	m.Observe("task.get", OutcomeOK, time.Millisecond)

	stats, err := m.Snapshot()
	require.NoError(t, err)

	assert.Equal(t, []OperationStat{
		{Operation: "auth.login", Outcome: OutcomeOK, Count: 1},
		{Operation: "task.get", Outcome: OutcomeNotFound, Count: 1},
		{Operation: "task.get", Outcome: OutcomeOK, Count: 2},
	}, stats)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.Observe("x", OutcomeOK, time.Second)

	stats, err := m.Snapshot()
	assert.NoError(t, err)
	assert.Empty(t, stats)
}

package metrics

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveInsert(t *testing.T) {
	m := New()
	m.ObserveInsert("Profesores", OutcomeSucceeded, time.Millisecond)
	m.ObserveInsert("Profesores", OutcomeSucceeded, time.Millisecond)
	m.ObserveInsert("Profesores", OutcomeRejected, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.insertsTotal.WithLabelValues("Profesores", OutcomeSucceeded)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.insertsTotal.WithLabelValues("Profesores", OutcomeRejected)))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.ObserveInsert("Idiomas", OutcomeSucceeded, 0) })
}

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.ObserveInsert("Idiomas", OutcomeSucceeded, 2*time.Millisecond)

	path := filepath.Join(t.TempDir(), "carga.prom")
	require.NoError(t, m.WriteTextfile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `carga_inserts_total{outcome="succeeded",table="Idiomas"} 1`)
	assert.Contains(t, string(content), "carga_insert_duration_seconds_bucket")
}

func TestLogHook(t *testing.T) {
	m := New()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.AddHook(NewLogHook(m))

	logger.Warn("rejected")
	logger.Warn("rejected")
	logger.Info("done")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.logsTotal.WithLabelValues("warning")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.logsTotal.WithLabelValues("info")))
}

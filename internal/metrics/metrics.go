package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

const (
	OutcomeSucceeded = "succeeded"
	OutcomeRejected  = "rejected"
)

// Metrics collects per-table insert outcomes for a single load run.
type Metrics struct {
	registry *prometheus.Registry

	insertsTotal  *prometheus.CounterVec
	insertSeconds *prometheus.HistogramVec
	logsTotal     *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		insertsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "carga_inserts_total",
			Help: "Total number of attempted single-record inserts by table and outcome",
		}, []string{"table", "outcome"}),
		insertSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "carga_insert_duration_seconds",
			Help:    "Latency of single-record inserts",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
		}, []string{"table"}),
		logsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "carga_logs_total",
			Help: "Total number of logs produced by level",
		}, []string{"level"}),
	}
	m.registry.MustRegister(m)
	return m
}

// ObserveInsert records one insert attempt. A nil receiver is a no-op.
func (m *Metrics) ObserveInsert(table, outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.insertsTotal.WithLabelValues(table, outcome).Inc()
	m.insertSeconds.WithLabelValues(table).Observe(took.Seconds())
}

func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	m.insertsTotal.Describe(ch)
	m.insertSeconds.Describe(ch)
	m.logsTotal.Describe(ch)
}

func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	m.insertsTotal.Collect(ch)
	m.insertSeconds.Collect(ch)
	m.logsTotal.Collect(ch)
}

// WriteTextfile dumps the registry in the node_exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}

// LogHook counts emitted log entries by level.
type LogHook struct {
	metrics *Metrics
}

func NewLogHook(m *Metrics) *LogHook {
	return &LogHook{metrics: m}
}

func (h *LogHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *LogHook) Fire(entry *logrus.Entry) error {
	h.metrics.logsTotal.WithLabelValues(entry.Level.String()).Inc()
	return nil
}

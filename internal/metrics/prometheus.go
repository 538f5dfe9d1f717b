package metrics

import (
	"strconv"
	"sync"

	"github.com/arloliu/xcbalance/types"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are created and registered lazily on first use, so constructing
// a PrometheusCollector that is never exercised does not touch the registerer.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	buildDuration *prometheus.HistogramVec
	batches       *prometheus.CounterVec
	localTasks    *prometheus.GaugeVec
	paddingPoints prometheus.Counter
	ledgerCost    *prometheus.GaugeVec
	ledgerSpread  prometheus.Gauge
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "xcbalance" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "xcbalance"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.buildDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "build",
			Name:      "duration_seconds",
			Help:      "Duration of task list builds in seconds by strategy and result.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10), // 1ms .. ~4min
		}, []string{"strategy", "result"})

		p.batches = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "build",
			Name:      "batches_total",
			Help:      "Grid batches seen by outcome (accepted, empty, screened_out).",
		}, []string{"outcome"})

		p.localTasks = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "build",
			Name:      "local_tasks",
			Help:      "Local task count by stage (assigned, merged).",
		}, []string{"stage"})

		p.paddingPoints = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "build",
			Name:      "padding_points_total",
			Help:      "Zero-weight points appended to reach the pad value.",
		})

		p.ledgerCost = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "ledger",
			Name:      "cost",
			Help:      "Cumulative estimated cost assigned to each rank.",
		}, []string{"rank"})

		p.ledgerSpread = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "ledger",
			Name:      "spread",
			Help:      "Difference between the most and the least loaded rank.",
		})

		p.reg.MustRegister(p.buildDuration)
		p.reg.MustRegister(p.batches)
		p.reg.MustRegister(p.localTasks)
		p.reg.MustRegister(p.paddingPoints)
		p.reg.MustRegister(p.ledgerCost)
		p.reg.MustRegister(p.ledgerSpread)
	})
}

// RecordBuildDuration observes the duration of one build.
func (p *PrometheusCollector) RecordBuildDuration(duration float64, strategy string, success bool) {
	p.ensureRegistered()
	result := "success"
	if !success {
		result = "failure"
	}
	p.buildDuration.WithLabelValues(strategy, result).Observe(duration)
}

// RecordBatches adds count batches to the given outcome.
func (p *PrometheusCollector) RecordBatches(outcome string, count int) {
	p.ensureRegistered()
	if count <= 0 {
		return
	}
	p.batches.WithLabelValues(outcome).Add(float64(count))
}

// RecordLocalTasks sets the local task gauge for a stage.
func (p *PrometheusCollector) RecordLocalTasks(stage string, count int) {
	p.ensureRegistered()
	p.localTasks.WithLabelValues(stage).Set(float64(count))
}

// RecordPaddingPoints adds padding points to the counter.
func (p *PrometheusCollector) RecordPaddingPoints(count int) {
	p.ensureRegistered()
	if count <= 0 {
		return
	}
	p.paddingPoints.Add(float64(count))
}

// RecordLedger sets the cost gauge of every rank.
func (p *PrometheusCollector) RecordLedger(ledger types.Ledger) {
	p.ensureRegistered()
	for rank, cost := range ledger {
		p.ledgerCost.WithLabelValues(strconv.Itoa(rank)).Set(float64(cost))
	}
}

// RecordLedgerSpread sets the ledger spread gauge.
func (p *PrometheusCollector) RecordLedgerSpread(spread int64) {
	p.ensureRegistered()
	p.ledgerSpread.Set(float64(spread))
}

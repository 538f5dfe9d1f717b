// Package metrics provides types.MetricsCollector implementations.
package metrics

import "github.com/arloliu/xcbalance/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Example:
//
//	lb, err := xcbalance.NewLoadBalancer(&cfg, comm, mol, grid, basis, xcbalance.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// BuildMetrics implementation

// RecordBuildDuration discards the build duration metric.
func (n *NopMetrics) RecordBuildDuration(_ /* duration */ float64, _ /* strategy */ string, _ /* success */ bool) {
	// No-op
}

// RecordBatches discards the batch outcome metric.
func (n *NopMetrics) RecordBatches(_ /* outcome */ string, _ /* count */ int) {
	// No-op
}

// RecordLocalTasks discards the local task gauge.
func (n *NopMetrics) RecordLocalTasks(_ /* stage */ string, _ /* count */ int) {
	// No-op
}

// RecordPaddingPoints discards the padding counter.
func (n *NopMetrics) RecordPaddingPoints(_ /* count */ int) {
	// No-op
}

// LedgerMetrics implementation

// RecordLedger discards the per-rank ledger gauge.
func (n *NopMetrics) RecordLedger(_ /* ledger */ types.Ledger) {
	// No-op
}

// RecordLedgerSpread discards the ledger spread gauge.
func (n *NopMetrics) RecordLedgerSpread(_ /* spread */ int64) {
	// No-op
}

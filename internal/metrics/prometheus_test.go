package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/xcbalance/types"
)

func TestPrometheusCollector(t *testing.T) {
	t.Run("registers lazily", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		_ = NewPrometheus(reg, "")

		families, err := reg.Gather()
		require.NoError(t, err)
		require.Empty(t, families)
	})

	t.Run("records batches and padding", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		p := NewPrometheus(reg, "test")

		p.RecordBatches("accepted", 3)
		p.RecordBatches("accepted", 2)
		p.RecordBatches("empty", 0)
		p.RecordPaddingPoints(7)

		require.InDelta(t, 5.0, testutil.ToFloat64(p.batches.WithLabelValues("accepted")), 1e-9)
		require.InDelta(t, 0.0, testutil.ToFloat64(p.batches.WithLabelValues("empty")), 1e-9)
		require.InDelta(t, 7.0, testutil.ToFloat64(p.paddingPoints), 1e-9)
	})

	t.Run("records ledger per rank", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		p := NewPrometheus(reg, "test")

		p.RecordLedger(types.Ledger{24, 16})
		p.RecordLedgerSpread(8)
		p.RecordLocalTasks("merged", 4)

		require.InDelta(t, 24.0, testutil.ToFloat64(p.ledgerCost.WithLabelValues("0")), 1e-9)
		require.InDelta(t, 16.0, testutil.ToFloat64(p.ledgerCost.WithLabelValues("1")), 1e-9)
		require.InDelta(t, 8.0, testutil.ToFloat64(p.ledgerSpread), 1e-9)
		require.InDelta(t, 4.0, testutil.ToFloat64(p.localTasks.WithLabelValues("merged")), 1e-9)
	})

	t.Run("observes build duration", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		p := NewPrometheus(reg, "test")

		p.RecordBuildDuration(0.25, "replicated-petite", true)
		p.RecordBuildDuration(0.5, "replicated-petite", false)

		require.Equal(t, 2, testutil.CollectAndCount(p.buildDuration))
	})
}

package types

// MetricsCollector defines methods for recording balancing metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// All methods must be thread-safe.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	BuildMetrics
	LedgerMetrics
}

// BuildMetrics defines metrics for the task build pipeline.
type BuildMetrics interface {
	// RecordBuildDuration records the time taken by one build.
	//
	// Parameters:
	//   - duration: Time taken in seconds
	//   - strategy: Strategy name
	//   - success: true if the build produced a task list
	RecordBuildDuration(duration float64, strategy string, success bool)

	// RecordBatches records batch outcomes.
	//
	// Parameters:
	//   - outcome: "accepted", "empty" or "screened_out"
	//   - count: Number of batches with that outcome
	RecordBatches(outcome string, count int)

	// RecordLocalTasks sets the local task count (gauge metric).
	//
	// Parameters:
	//   - stage: "assigned" (before merge) or "merged"
	//   - count: Number of tasks
	RecordLocalTasks(stage string, count int)

	// RecordPaddingPoints records zero-weight points added by padding.
	RecordPaddingPoints(count int)
}

// LedgerMetrics defines metrics for the workload ledger.
type LedgerMetrics interface {
	// RecordLedger sets the cumulative cost of every rank (gauge metric).
	RecordLedger(ledger Ledger)

	// RecordLedgerSpread sets the max-min cost difference across ranks (gauge metric).
	RecordLedgerSpread(spread int64)
}

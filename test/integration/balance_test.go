//go:build integration
// +build integration

package integration_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/xcbalance"
	"github.com/arloliu/xcbalance/report"
	"github.com/arloliu/xcbalance/strategy"
	"github.com/arloliu/xcbalance/test/testutil"
	xctest "github.com/arloliu/xcbalance/testing"
	"github.com/arloliu/xcbalance/types"
)

// TestJob_CoverageAcrossStrategies verifies that every strategy hands each
// accepted point to exactly one rank, for several job sizes.
func TestJob_CoverageAcrossStrategies(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	t.Parallel()

	sys := testutil.RandomSystem(42, 8)
	refCfg := xcbalance.TestConfig()
	reference := testutil.Reference(t, refCfg, sys)
	require.NotEmpty(t, reference)

	for _, name := range strategy.Names() {
		for _, size := range []int{1, 2, 3, 5} {
			t.Run(fmt.Sprintf("%s/size=%d", name, size), func(t *testing.T) {
				cfg := xcbalance.TestConfig()
				cfg.Strategy = name

				job := testutil.NewJob(t, cfg, size, sys, nil)
				perRank := job.MustBuild(t.Context())

				testutil.AssertCoverage(t, perRank, reference)
				for _, tasks := range perRank {
					testutil.AssertPadded(t, tasks, cfg.PadValue)
					testutil.AssertCanonicalOrder(t, tasks)
				}
				require.NoError(t, report.VerifyAgreement(job.Summaries()))
			})
		}
	}
}

// TestJob_Padding verifies padding on every rank and that padding never
// changes the integrated weight.
func TestJob_Padding(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	t.Parallel()

	sys := xctest.Water()
	reference := testutil.Reference(t, xcbalance.TestConfig(), sys)

	// water batches hold 64 points; none of these pads divide it
	for _, pad := range []int{3, 5, 48, 100} {
		t.Run(fmt.Sprintf("pad=%d", pad), func(t *testing.T) {
			cfg := xcbalance.TestConfig()
			cfg.PadValue = pad

			job := testutil.NewJob(t, cfg, 3, sys, nil)
			perRank := job.MustBuild(t.Context())

			total := 0.0
			padding := 0
			for rank, tasks := range perRank {
				testutil.AssertPadded(t, tasks, pad)
				total += testutil.WeightSum(tasks)

				summary, err := job.Balancers[rank].Summary()
				require.NoError(t, err)
				padding += summary.PaddingPoints
			}

			testutil.AssertCoverage(t, perRank, reference)
			require.InDelta(t, testutil.WeightSum(reference), total, 1e-9)
			require.Positive(t, padding)
		})
	}
}

// TestJob_Deterministic verifies that repeated builds of the same job give
// identical task lists and summaries on every rank.
func TestJob_Deterministic(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	t.Parallel()

	sys := testutil.RandomSystem(7, 12)
	cfg := xcbalance.TestConfig()
	cfg.PadValue = 4

	first := testutil.NewJob(t, cfg, 4, sys, nil)
	firstTasks := first.MustBuild(t.Context())

	for run := range 3 {
		cfg := cfg
		cfg.Parallelism = run + 1

		again := testutil.NewJob(t, cfg, 4, sys, nil)
		tasks := again.MustBuild(t.Context())

		require.Equal(t, firstTasks, tasks, "run %d", run)
		for rank, s := range again.Summaries() {
			want := first.Summaries()[rank]
			require.Equal(t, want.TaskFingerprint, s.TaskFingerprint, "rank %d", rank)
			require.Equal(t, want.LedgerFingerprint, s.LedgerFingerprint, "rank %d", rank)
		}
	}
}

// TestJob_GreedyBound verifies the load spread of the greedy strategies.
//
// Greedy assignment to the least-loaded rank keeps the spread of the final
// ledger below the largest single task cost.
func TestJob_GreedyBound(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	t.Parallel()

	sys := testutil.RandomSystem(11, 16)

	for _, name := range []string{strategy.NameLeastLoaded, strategy.NameFillIn} {
		t.Run(name, func(t *testing.T) {
			cfg := xcbalance.TestConfig()
			cfg.Strategy = name

			job := testutil.NewJob(t, cfg, 4, sys, nil)
			perRank := job.MustBuild(t.Context())

			var maxCost int64
			for _, tasks := range perRank {
				for i := range tasks {
					maxCost = max(maxCost, types.DefaultCost(&tasks[i], cfg.DerivativeOrder, len(sys.Molecule)))
				}
			}

			summary := job.Summaries()[0]
			require.Len(t, summary.Ledger, 4)
			require.LessOrEqual(t, summary.Ledger.Spread(), maxCost)
		})
	}
}

// TestJob_Screening verifies that batches outside every shell cutoff are
// dropped consistently on all ranks.
func TestJob_Screening(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	t.Parallel()

	job := testutil.NewJob(t, xcbalance.TestConfig(), 2, xctest.Water(), nil)
	job.MustBuild(t.Context())

	summaries := job.Summaries()
	require.NoError(t, report.VerifyAgreement(summaries))

	s := summaries[0]
	require.Equal(t, 27+8+8, s.BatchesSeen)
	require.Positive(t, s.BatchesScreenedOut)
	require.Equal(t, s.BatchesSeen, s.BatchesAccepted+s.BatchesEmpty+s.BatchesScreenedOut)
	require.Equal(t, s.BatchesAccepted, summaries[0].TasksAssigned+summaries[1].TasksAssigned)
}

// TestJob_MoreRanksThanTasks verifies that idle ranks build an empty list
// without failing.
func TestJob_MoreRanksThanTasks(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	t.Parallel()

	sys := xctest.Water()
	reference := testutil.Reference(t, xcbalance.TestConfig(), sys)

	size := len(reference) + 60
	job := testutil.NewJob(t, xcbalance.TestConfig(), size, sys, nil)
	perRank := job.MustBuild(t.Context())

	idle := 0
	for _, tasks := range perRank {
		if len(tasks) == 0 {
			idle++
		}
	}

	require.Positive(t, idle)
	testutil.AssertCoverage(t, perRank, reference)
	require.NoError(t, report.VerifyAgreement(job.Summaries()))
}

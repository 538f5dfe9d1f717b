//go:build integration
// +build integration

package integration_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/xcbalance"
	"github.com/arloliu/xcbalance/report"
	"github.com/arloliu/xcbalance/test/testutil"
	xctest "github.com/arloliu/xcbalance/testing"
)

// TestJob_PublishedSummariesAgree publishes every rank's summary to a
// JetStream KV bucket and checks agreement from the collected reports.
func TestJob_PublishedSummariesAgree(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	t.Parallel()

	_, nc := xctest.StartEmbeddedNATS(t)
	js := xctest.NewJetStream(t, nc)

	cfg := xcbalance.TestConfig()
	const size = 4

	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Second)
	defer cancel()

	publisher, err := report.NewPublisher(ctx, js, cfg.Report.Bucket, cfg.Report.KeyPrefix, cfg.Report.TTL,
		report.WithLogger(xctest.NewTestLogger(t)))
	require.NoError(t, err)

	collected := make(chan error, 1)
	go func() {
		summaries, err := publisher.Await(ctx, size)
		if err == nil {
			err = report.VerifyAgreement(summaries)
		}
		collected <- err
	}()

	job := testutil.NewJob(t, cfg, size, testutil.RandomSystem(21, 9), func(int) []xcbalance.Option {
		return []xcbalance.Option{xcbalance.WithSummaryPublisher(publisher)}
	})
	job.MustBuild(ctx)

	select {
	case err := <-collected:
		require.NoError(t, err)
	case <-ctx.Done():
		t.Fatal("timed out waiting for summaries")
	}

	summaries, err := publisher.Collect(ctx, size)
	require.NoError(t, err)
	require.Equal(t, job.Summaries(), summaries)
}

package kvutil

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	xctest "github.com/arloliu/xcbalance/testing"
)

func TestSummaryBucketConfig(t *testing.T) {
	cfg := SummaryBucketConfig("reports", 0)
	require.Equal(t, "reports", cfg.Bucket)
	require.Equal(t, uint8(1), cfg.History)
	require.Zero(t, cfg.TTL)

	cfg = SummaryBucketConfig("reports", time.Hour)
	require.Equal(t, time.Hour, cfg.TTL)
}

func TestEnsureKVBucketWithRetry(t *testing.T) {
	_, nc := xctest.StartEmbeddedNATS(t)
	js := xctest.NewJetStream(t, nc)
	ctx := context.Background()

	t.Run("creates bucket", func(t *testing.T) {
		kv, err := EnsureKVBucketWithRetry(ctx, js, SummaryBucketConfig("report-1", 0), 3)

		require.NoError(t, err)
		require.Equal(t, "report-1", kv.Bucket())
	})

	t.Run("opens existing bucket", func(t *testing.T) {
		cfg := SummaryBucketConfig("report-2", 0)
		_, err := js.CreateKeyValue(ctx, cfg)
		require.NoError(t, err)

		kv, err := EnsureKVBucketWithRetry(ctx, js, cfg, 3)
		require.NoError(t, err)
		require.NotNil(t, kv)
	})

	t.Run("all ranks open the same bucket concurrently", func(t *testing.T) {
		const ranks = 8
		cfg := SummaryBucketConfig("report-3", time.Minute)

		var wg sync.WaitGroup
		errs := make([]error, ranks)
		for i := range ranks {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, errs[i] = EnsureKVBucketWithRetry(ctx, js, cfg, 5)
			}()
		}
		wg.Wait()

		for i, err := range errs {
			require.NoError(t, err, "rank %d", i)
		}
	})

	t.Run("canceled context fails", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := EnsureKVBucketWithRetry(cancelled, js, SummaryBucketConfig("report-4", 0), 3)

		require.Error(t, err)
		require.Contains(t, err.Error(), "context")
	})
}

// Package kvutil provides utilities for working with NATS JetStream KeyValue stores.
package kvutil

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
)

const (
	defaultMaxRetries = 3
	baseBackoff       = 10 * time.Millisecond
)

// SummaryBucketConfig returns the KV configuration of a build summary bucket.
//
// Each key holds the latest summary of one rank, so history is 1.
//
// Parameters:
//   - bucket: Bucket name
//   - ttl: Entry lifetime (0 = no expiration)
func SummaryBucketConfig(bucket string, ttl time.Duration) jetstream.KeyValueConfig {
	cfg := jetstream.KeyValueConfig{
		Bucket:      bucket,
		Description: "xcbalance build summaries, one key per rank",
		History:     1,
	}
	if ttl > 0 {
		cfg.TTL = ttl
	}

	return cfg
}

// EnsureKVBucketWithRetry creates or opens a KV bucket with retry logic.
//
// All ranks of a job open the summary bucket at about the same time. Creation
// races are resolved by opening the bucket once it exists; other failures are
// retried with exponential backoff (10ms, 20ms, 40ms, ...).
//
// Parameters:
//   - ctx: Context for timeout/cancellation
//   - js: JetStream context
//   - config: KV bucket configuration
//   - maxRetries: Maximum number of attempts (default: 3)
//
// Returns:
//   - jetstream.KeyValue: The KV bucket instance
//   - error: Last error after all attempts, or the context error
//
// Example:
//
//	kv, err := kvutil.EnsureKVBucketWithRetry(ctx, js, kvutil.SummaryBucketConfig("xcbalance-report", 0), 5)
func EnsureKVBucketWithRetry(
	ctx context.Context,
	js jetstream.JetStream,
	config jetstream.KeyValueConfig,
	maxRetries int,
) (jetstream.KeyValue, error) {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	var lastErr error
	for attempt := range maxRetries {
		kv, err := createOrOpen(ctx, js, config)
		if err == nil {
			return kv, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return nil, fmt.Errorf("context cancelled during KV bucket creation: %w", ctx.Err())
		}

		if attempt == maxRetries-1 {
			break
		}

		backoff := baseBackoff << uint(attempt) //nolint:gosec // attempt is bounded by maxRetries
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("context cancelled during KV bucket creation: %w", ctx.Err())
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("failed to create/open KV bucket %s after %d attempts: %w",
		config.Bucket, maxRetries, lastErr)
}

func createOrOpen(ctx context.Context, js jetstream.JetStream, config jetstream.KeyValueConfig) (jetstream.KeyValue, error) {
	kv, err := js.CreateKeyValue(ctx, config)
	if err == nil {
		return kv, nil
	}

	if !errors.Is(err, jetstream.ErrBucketExists) {
		return nil, err
	}

	kv, err = js.KeyValue(ctx, config.Bucket)
	if err != nil {
		return nil, fmt.Errorf("bucket exists but failed to open: %w", err)
	}

	return kv, nil
}

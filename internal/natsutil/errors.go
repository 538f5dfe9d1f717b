// Package natsutil holds NATS helpers shared by the reporting code.
package natsutil

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// IsConnectivityError checks if an error is caused by connectivity issues.
//
// This includes NATS timeouts, missing servers, disconnections and JetStream
// requests that received no response.
//
// Parameters:
//   - err: Error to check
//
// Returns:
//   - bool: true if error indicates connectivity issue
func IsConnectivityError(err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, nats.ErrTimeout) ||
		errors.Is(err, nats.ErrNoServers) ||
		errors.Is(err, nats.ErrDisconnected) ||
		errors.Is(err, nats.ErrConnectionClosed) ||
		errors.Is(err, nats.ErrNoResponders) ||
		errors.Is(err, jetstream.ErrNoStreamResponse) ||
		strings.Contains(err.Error(), "connection refused") ||
		strings.Contains(err.Error(), "i/o timeout")
}

// RetryConnectivity runs op until it succeeds, fails with a non-connectivity
// error, or attempts are exhausted. Backoff doubles from base between attempts.
//
// Returns:
//   - error: The last error of op, or the context error if ctx ends while waiting
func RetryConnectivity(ctx context.Context, attempts int, base time.Duration, op func() error) error {
	attempts = max(attempts, 1)

	var err error
	for attempt := range attempts {
		if err = op(); err == nil || !IsConnectivityError(err) {
			return err
		}

		if attempt == attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(base << uint(attempt)): //nolint:gosec // attempt is bounded by attempts
		}
	}

	return err
}

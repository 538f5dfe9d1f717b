package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/arloliu/xcbalance/internal/kvutil"
	"github.com/arloliu/xcbalance/internal/logging"
	"github.com/arloliu/xcbalance/internal/natsutil"
	"github.com/arloliu/xcbalance/types"
)

const (
	bucketRetries  = 5
	publishRetries = 3
	publishBackoff = 50 * time.Millisecond
)

// Publisher writes and reads build summaries in a JetStream KV bucket.
//
// Publisher implements types.SummaryPublisher and can be passed to the load
// balancer through xcbalance.WithSummaryPublisher.
type Publisher struct {
	kv     jetstream.KeyValue
	prefix string
	logger types.Logger
}

var _ types.SummaryPublisher = (*Publisher)(nil)

// Option configures a Publisher.
type Option func(*Publisher)

// WithLogger sets the publisher logger.
func WithLogger(logger types.Logger) Option {
	return func(p *Publisher) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPublisher creates or opens the summary bucket and returns a publisher on it.
//
// Parameters:
//   - ctx: Context for bucket creation
//   - js: JetStream context
//   - bucket: KV bucket name
//   - prefix: Key prefix
//   - ttl: Entry lifetime (0 = no expiration)
//   - opts: Optional configuration
//
// Returns:
//   - *Publisher: Publisher bound to the bucket
//   - error: Bucket creation error
//
// Example:
//
//	js, _ := jetstream.New(nc)
//	pub, err := report.NewPublisher(ctx, js, cfg.Report.Bucket, cfg.Report.KeyPrefix, cfg.Report.TTL)
func NewPublisher(ctx context.Context, js jetstream.JetStream, bucket, prefix string, ttl time.Duration, opts ...Option) (*Publisher, error) {
	kv, err := kvutil.EnsureKVBucketWithRetry(ctx, js, kvutil.SummaryBucketConfig(bucket, ttl), bucketRetries)
	if err != nil {
		return nil, err
	}

	return NewFromKV(kv, prefix, opts...), nil
}

// NewFromKV returns a publisher on an existing KV bucket.
func NewFromKV(kv jetstream.KeyValue, prefix string, opts ...Option) *Publisher {
	p := &Publisher{
		kv:     kv,
		prefix: prefix,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Key returns the KV key of a rank's summary.
func (p *Publisher) Key(rank int) string {
	return fmt.Sprintf("%s.rank-%d", p.prefix, rank)
}

// Publish stores the summary under the key of its rank, replacing any earlier one.
// Connectivity failures are retried with backoff.
func (p *Publisher) Publish(ctx context.Context, summary types.Summary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}

	var rev uint64
	err = natsutil.RetryConnectivity(ctx, publishRetries, publishBackoff, func() error {
		var putErr error
		rev, putErr = p.kv.Put(ctx, p.Key(summary.Rank), data)

		return putErr
	})
	if err != nil {
		return fmt.Errorf("publish summary of rank %d: %w", summary.Rank, err)
	}

	p.logger.Debug("published build summary",
		"rank", summary.Rank,
		"key", p.Key(summary.Rank),
		"revision", rev,
	)

	return nil
}

// Collect reads the summaries of ranks 0..size-1.
//
// Returns:
//   - []types.Summary: Summaries in rank order
//   - error: ErrMissingRank (wrapped) if any rank has not published
func (p *Publisher) Collect(ctx context.Context, size int) ([]types.Summary, error) {
	summaries := make([]types.Summary, 0, size)
	for rank := range size {
		entry, err := p.kv.Get(ctx, p.Key(rank))
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: rank %d", ErrMissingRank, rank)
		}
		if err != nil {
			return nil, fmt.Errorf("read summary of rank %d: %w", rank, err)
		}

		s, err := decode(entry.Value())
		if err != nil {
			return nil, fmt.Errorf("rank %d: %w", rank, err)
		}
		summaries = append(summaries, s)
	}

	return summaries, nil
}

// Await watches the bucket until ranks 0..size-1 have all published.
//
// Summaries already present count immediately. Keys with a rank outside the
// job are ignored.
//
// Returns:
//   - []types.Summary: Summaries in rank order
//   - error: ErrMissingRank (wrapped with the context error) if ctx ends first
func (p *Publisher) Await(ctx context.Context, size int) ([]types.Summary, error) {
	watcher, err := p.kv.Watch(ctx, p.prefix+".>")
	if err != nil {
		return nil, fmt.Errorf("watch summaries: %w", err)
	}
	defer func() {
		if stopErr := watcher.Stop(); stopErr != nil {
			p.logger.Debug("failed to stop summary watcher", "error", stopErr)
		}
	}()

	got := make(map[int]types.Summary, size)
	for {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %d of %d ranks reported: %w", ErrMissingRank, len(got), size, ctx.Err())
		case entry, ok := <-watcher.Updates():
			if !ok {
				return nil, fmt.Errorf("%w: watcher closed after %d of %d ranks", ErrMissingRank, len(got), size)
			}
			// nil marks the end of the initial values
			if entry == nil || entry.Operation() != jetstream.KeyValuePut {
				continue
			}

			s, err := decode(entry.Value())
			if err != nil {
				p.logger.Warn("skipping malformed summary", "key", entry.Key(), "error", err)
				continue
			}
			if s.Rank < 0 || s.Rank >= size {
				continue
			}
			got[s.Rank] = s

			if len(got) == size {
				summaries := make([]types.Summary, 0, size)
				for rank := range size {
					summaries = append(summaries, got[rank])
				}

				return summaries, nil
			}
		}
	}
}

func decode(data []byte) (types.Summary, error) {
	var s types.Summary
	if err := json.Unmarshal(data, &s); err != nil {
		return types.Summary{}, fmt.Errorf("decode summary: %w", err)
	}

	return s, nil
}

// VerifyAgreement checks that a complete set of summaries describes one consistent assignment.
//
// Checks:
//   - Ranks 0..Size-1 each appear exactly once
//   - Size, Strategy, PadValue, Atoms, batch counts and LedgerFingerprint agree
//   - Locally assigned tasks sum to the accepted batch count
//
// Returns:
//   - error: ErrMissingRank, ErrDuplicateRank or ErrDisagreement (wrapped), nil if consistent
func VerifyAgreement(summaries []types.Summary) error {
	if len(summaries) == 0 {
		return fmt.Errorf("%w: no summaries", ErrMissingRank)
	}

	ref := summaries[0]
	seen := make([]bool, max(ref.Size, 0))
	assigned := 0

	for _, s := range summaries {
		if err := compare(&ref, &s); err != nil {
			return err
		}
		if s.Rank < 0 || s.Rank >= len(seen) {
			return fmt.Errorf("%w: rank %d outside job of size %d", ErrDisagreement, s.Rank, ref.Size)
		}
		if seen[s.Rank] {
			return fmt.Errorf("%w: rank %d", ErrDuplicateRank, s.Rank)
		}
		seen[s.Rank] = true
		assigned += s.TasksAssigned
	}

	if missing := slices.Index(seen, false); missing >= 0 {
		return fmt.Errorf("%w: rank %d", ErrMissingRank, missing)
	}

	if assigned != ref.BatchesAccepted {
		return fmt.Errorf("%w: %d tasks assigned across ranks for %d accepted batches",
			ErrDisagreement, assigned, ref.BatchesAccepted)
	}

	return nil
}

func compare(ref, s *types.Summary) error {
	switch {
	case s.Size != ref.Size:
		return fmt.Errorf("%w: rank %d size %d, rank %d size %d", ErrDisagreement, ref.Rank, ref.Size, s.Rank, s.Size)
	case s.Strategy != ref.Strategy:
		return fmt.Errorf("%w: rank %d strategy %q, rank %d strategy %q", ErrDisagreement, ref.Rank, ref.Strategy, s.Rank, s.Strategy)
	case s.PadValue != ref.PadValue || s.Atoms != ref.Atoms:
		return fmt.Errorf("%w: rank %d and rank %d differ in pad value or atom count", ErrDisagreement, ref.Rank, s.Rank)
	case s.BatchesSeen != ref.BatchesSeen || s.BatchesAccepted != ref.BatchesAccepted:
		return fmt.Errorf("%w: rank %d and rank %d saw different batches", ErrDisagreement, ref.Rank, s.Rank)
	case s.LedgerFingerprint != ref.LedgerFingerprint:
		return fmt.Errorf("%w: rank %d ledger %x, rank %d ledger %x", ErrDisagreement, ref.Rank, ref.LedgerFingerprint, s.Rank, s.LedgerFingerprint)
	}

	return nil
}

package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/arloliu/xcbalance"
	xctest "github.com/arloliu/xcbalance/testing"
	"github.com/arloliu/xcbalance/types"
)

// Job simulates all ranks of a distributed build inside one process.
//
// Every rank gets its own load balancer over the same system, exactly as
// independent processes of a real job would.
type Job struct {
	t         *testing.T
	Balancers []*xcbalance.LoadBalancer
}

// NewJob creates one load balancer per rank.
//
// Parameters:
//   - t: Test instance for failure reporting
//   - cfg: Configuration shared by all ranks (copied per rank)
//   - size: Number of ranks
//   - sys: System to balance
//   - optsFor: Optional per-rank options, may be nil
//
// Returns:
//   - *Job: Job ready to build
func NewJob(t *testing.T, cfg xcbalance.Config, size int, sys xctest.System, optsFor func(rank int) []xcbalance.Option) *Job {
	t.Helper()

	job := &Job{t: t, Balancers: make([]*xcbalance.LoadBalancer, size)}
	for i, comm := range xctest.Ranks(size) {
		rankCfg := cfg
		var opts []xcbalance.Option
		if optsFor != nil {
			opts = optsFor(i)
		}

		lb, err := xcbalance.NewLoadBalancer(&rankCfg, comm, sys.Molecule, sys.Grid, sys.Basis, opts...)
		require.NoError(t, err, "rank %d", i)
		job.Balancers[i] = lb
	}

	return job
}

// Build runs every rank concurrently and returns the local task lists by rank.
func (j *Job) Build(ctx context.Context) ([][]types.Task, error) {
	perRank := make([][]types.Task, len(j.Balancers))

	g, gctx := errgroup.WithContext(ctx)
	for i, lb := range j.Balancers {
		g.Go(func() error {
			tasks, err := lb.Tasks(gctx)
			perRank[i] = tasks

			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return perRank, nil
}

// MustBuild is Build that fails the test on error.
func (j *Job) MustBuild(ctx context.Context) [][]types.Task {
	j.t.Helper()

	perRank, err := j.Build(ctx)
	require.NoError(j.t, err)

	return perRank
}

// Summaries returns the build summary of every rank. Must be called after a successful build.
func (j *Job) Summaries() []types.Summary {
	j.t.Helper()

	summaries := make([]types.Summary, len(j.Balancers))
	for i, lb := range j.Balancers {
		s, err := lb.Summary()
		require.NoError(j.t, err, "rank %d", i)
		summaries[i] = s
	}

	return summaries
}

// Reference builds sys on a single rank and returns its task list.
//
// A single-rank build holds every accepted point, which makes it the
// baseline for coverage checks of multi-rank jobs.
func Reference(t *testing.T, cfg xcbalance.Config, sys xctest.System) []types.Task {
	t.Helper()

	perRank := NewJob(t, cfg, 1, sys, nil).MustBuild(t.Context())

	return perRank[0]
}

package xcbalance

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/arloliu/xcbalance/internal/hooks"
	"github.com/arloliu/xcbalance/internal/logging"
	"github.com/arloliu/xcbalance/internal/metrics"
	"github.com/arloliu/xcbalance/internal/tasks"
	"github.com/arloliu/xcbalance/screen"
	"github.com/arloliu/xcbalance/strategy"
)

// LoadBalancer produces the local share of integration tasks for one rank.
//
// Every rank of a job constructs a LoadBalancer with the same configuration,
// molecule, grid and basis. Each rank replays the same deterministic
// assignment and keeps only its own tasks, so no message passing is needed.
//
// Thread Safety:
//   - All public methods are safe for concurrent use
//   - Exactly one build runs, triggered by the first Tasks call
//   - Returned task slices are fresh; the tasks they hold must be treated as read-only
//
// Lifecycle:
//   - Create with NewLoadBalancer()
//   - Call Tasks() to build (first call) and fetch the local task list
//   - Weight partitioning code calls MarkWeightsModified() after rewriting weights
//   - Integrators call RequireModifiedWeights() before integrating
type LoadBalancer struct {
	cfg  Config
	comm Communicator

	// Optional dependencies (always non-nil after construction)
	strategy  DistributionStrategy
	hooks     Hooks
	metrics   MetricsCollector
	logger    Logger
	publisher SummaryPublisher

	builder *tasks.Builder

	// Build result, written once under buildOnce
	buildOnce sync.Once
	state     atomic.Int32 // State
	tasks     []Task
	summary   Summary
	buildErr  error

	weightsModified atomic.Bool
}

// NewLoadBalancer creates a new LoadBalancer instance.
//
// Construction validates configuration and collaborators but does no work on
// the grid; the build runs on the first Tasks call.
//
// Parameters:
//   - cfg: Configuration (missing values are defaulted in place)
//   - comm: Local rank and job size
//   - mol: Molecule (non-empty)
//   - grid: Atomic grids per element
//   - basis: Primary basis
//   - opts: Optional configuration (screener, secondary basis, cost, strategy, hooks, metrics, logger, publisher)
//
// Returns:
//   - *LoadBalancer: Initialized load balancer
//   - error: Configuration or collaborator error
//
// Example:
//
//	cfg := xcbalance.DefaultConfig()
//	cfg.PadValue = 8
//	lb, err := xcbalance.NewLoadBalancer(&cfg, comm, mol, grid, basis)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	localTasks, err := lb.Tasks(ctx)
func NewLoadBalancer(cfg *Config, comm Communicator, mol Molecule, grid MolecularGrid, basis Basis, opts ...Option) (*LoadBalancer, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}
	if comm == nil {
		return nil, fmt.Errorf("%w: communicator is nil", ErrInvalidCommunicator)
	}
	if grid == nil {
		return nil, fmt.Errorf("molecular grid: %w", ErrMissingCollaborator)
	}
	if basis == nil {
		return nil, fmt.Errorf("basis: %w", ErrMissingCollaborator)
	}
	if len(mol) == 0 {
		return nil, ErrEmptyMolecule
	}

	rank, size := comm.Rank(), comm.Size()
	if size < 1 || rank < 0 || rank >= size {
		return nil, fmt.Errorf("%w: rank %d of size %d", ErrInvalidCommunicator, rank, size)
	}

	// Fill in missing configuration values with defaults
	SetDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	options := &balancerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Provide safe defaults for optional dependencies to avoid nil checks everywhere
	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logging.NewNop()
	}

	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	cfg.ValidateWithWarnings(loggerInstance)

	distStrategy := options.strategy
	if distStrategy == nil {
		s, err := strategy.Lookup(cfg.Strategy)
		if err != nil {
			return nil, err
		}
		distStrategy = s
	}

	screener := options.screener
	if screener == nil {
		screener = screen.NewCutoff()
	}

	builder, err := tasks.NewBuilder(&tasks.Config{
		Molecule:        slices.Clone(mol),
		Grid:            grid,
		Basis:           basis,
		Screener:        screener,
		Strategy:        distStrategy,
		Rank:            rank,
		Size:            size,
		Secondary:       options.secondary,
		Cost:            options.cost,
		PadValue:        cfg.PadValue,
		DerivativeOrder: cfg.DerivativeOrder,
		AtomsPerRound:   cfg.AtomsPerRound,
		Parallelism:     cfg.Parallelism,
		Logger:          loggerInstance,
		Metrics:         metricsCollector,
	})
	if err != nil {
		return nil, err
	}

	lb := &LoadBalancer{
		cfg:       *cfg,
		comm:      comm,
		strategy:  distStrategy,
		hooks:     hooks.Fill(options.hooks),
		metrics:   metricsCollector,
		logger:    loggerInstance,
		publisher: options.publisher,
		builder:   builder,
	}
	lb.state.Store(int32(StateUnbuilt))

	return lb, nil
}

// Tasks returns the local task list, building it on the first call.
//
// The list is padded, deduplicated and sorted by (parent atom, shell list).
// Concurrent first callers block until the single build finishes. The context
// of the call that triggers the build is honored between batches; a canceled
// build fails permanently.
//
// Returns:
//   - []Task: Fresh slice over the cached tasks
//   - error: The build error, identical on every call after a failed build
func (lb *LoadBalancer) Tasks(ctx context.Context) ([]Task, error) {
	lb.buildOnce.Do(func() {
		lb.build(ctx)
	})

	if lb.buildErr != nil {
		return nil, lb.buildErr
	}

	return slices.Clone(lb.tasks), nil
}

// State returns the build state.
func (lb *LoadBalancer) State() State {
	return State(lb.state.Load())
}

// Summary returns the statistics of the completed build.
//
// Returns:
//   - Summary: Build summary (the ledger is a copy)
//   - error: ErrNotBuilt before the first build, or the build error
func (lb *LoadBalancer) Summary() (Summary, error) {
	switch lb.State() {
	case StateUnbuilt:
		return Summary{}, ErrNotBuilt
	case StateFailed:
		return Summary{}, lb.buildErr
	}

	s := lb.summary
	s.Ledger = s.Ledger.Clone()

	return s, nil
}

// Strategy returns the name of the distribution strategy in use.
func (lb *LoadBalancer) Strategy() string {
	return lb.strategy.Name()
}

// Rank returns the local rank.
func (lb *LoadBalancer) Rank() int {
	return lb.comm.Rank()
}

// MarkWeightsModified records that the weights of the task list have been
// replaced by partitioned weights.
func (lb *LoadBalancer) MarkWeightsModified() {
	lb.weightsModified.Store(true)
}

// ModifiedWeightsStored reports whether MarkWeightsModified has been called.
func (lb *LoadBalancer) ModifiedWeightsStored() bool {
	return lb.weightsModified.Load()
}

// RequireModifiedWeights returns ErrWeightsNotModified unless partitioned
// weights have been stored. Integrators call it before integrating.
func (lb *LoadBalancer) RequireModifiedWeights() error {
	if !lb.weightsModified.Load() {
		return ErrWeightsNotModified
	}

	return nil
}

// build runs the pipeline once and stores its outcome.
func (lb *LoadBalancer) build(ctx context.Context) {
	start := time.Now()
	res, err := lb.builder.Build(ctx)
	lb.metrics.RecordBuildDuration(time.Since(start).Seconds(), lb.strategy.Name(), err == nil)

	if err != nil {
		lb.buildErr = fmt.Errorf("build tasks: %w", err)
		lb.state.Store(int32(StateFailed))
		lb.logError("task build failed",
			"rank", lb.comm.Rank(),
			"strategy", lb.strategy.Name(),
			"error", err,
		)

		if hookErr := lb.hooks.OnError(ctx, lb.buildErr); hookErr != nil {
			lb.logError("error hook failed", "error", hookErr)
		}

		return
	}

	lb.tasks = res.Tasks
	lb.summary = res.Summary
	lb.state.Store(int32(StateBuilt))

	lb.logger.Info("task build complete",
		"rank", res.Summary.Rank,
		"size", res.Summary.Size,
		"strategy", res.Summary.Strategy,
		"tasks", res.Summary.TasksMerged,
		"points", res.Summary.TotalPoints,
		"duration", time.Since(start),
	)

	if err := lb.hooks.OnBuildComplete(ctx, res.Summary); err != nil {
		lb.logError("build complete hook error", "error", err)
	}

	if lb.publisher != nil {
		if err := lb.publisher.Publish(ctx, res.Summary); err != nil {
			lb.logError("failed to publish build summary", "rank", res.Summary.Rank, "error", err)
			if hookErr := lb.hooks.OnError(ctx, err); hookErr != nil {
				lb.logError("error hook failed", "error", hookErr)
			}
		}
	}
}

// logError logs an error message.
func (lb *LoadBalancer) logError(msg string, keysAndValues ...any) {
	// Logger is always non-nil (defaults to nopLogger)
	lb.logger.Error(msg, keysAndValues...)
}

package xcbalance

// Option configures a LoadBalancer with optional dependencies.
type Option func(*balancerOptions)

// balancerOptions holds optional LoadBalancer configuration.
type balancerOptions struct {
	screener  Screener
	secondary Basis
	cost      CostFunc
	strategy  DistributionStrategy
	hooks     *Hooks
	metrics   MetricsCollector
	logger    Logger
	publisher SummaryPublisher
}

// WithScreener sets the basis screening primitive.
//
// Parameters:
//   - screener: Screener implementation (default: screen.NewCutoff())
//
// Returns:
//   - Option: Functional option for NewLoadBalancer
//
// Example:
//
//	lb, err := xcbalance.NewLoadBalancer(&cfg, comm, mol, grid, basis,
//	    xcbalance.WithScreener(screen.NewCutoff(screen.WithRadiusScale(1.2))))
func WithScreener(screener Screener) Option {
	return func(o *balancerOptions) {
		o.screener = screener
	}
}

// WithSecondaryBasis screens a second basis alongside the primary one.
//
// Every task then carries a Secondary screening. Balancing and merging still
// use the primary screening only.
func WithSecondaryBasis(basis Basis) Option {
	return func(o *balancerOptions) {
		o.secondary = basis
	}
}

// WithCostFunc replaces the default task cost heuristic.
//
// The function must be pure and identical on every rank.
//
// Parameters:
//   - cost: Cost function (default: types.DefaultCost)
//
// Returns:
//   - Option: Functional option for NewLoadBalancer
//
// Example:
//
//	byPoints := func(t *xcbalance.Task, _, _ int) int64 { return int64(t.PointCount) }
//	lb, err := xcbalance.NewLoadBalancer(&cfg, comm, mol, grid, basis, xcbalance.WithCostFunc(byPoints))
func WithCostFunc(cost CostFunc) Option {
	return func(o *balancerOptions) {
		o.cost = cost
	}
}

// WithStrategy sets a strategy instance, overriding Config.Strategy.
//
// Example:
//
//	s := strategy.NewAffinity(strategy.WithOverloadThreshold(1.5))
//	lb, err := xcbalance.NewLoadBalancer(&cfg, comm, mol, grid, basis, xcbalance.WithStrategy(s))
func WithStrategy(strategy DistributionStrategy) Option {
	return func(o *balancerOptions) {
		o.strategy = strategy
	}
}

// WithHooks sets build event hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions
//
// Returns:
//   - Option: Functional option for NewLoadBalancer
//
// Example:
//
//	hooks := &xcbalance.Hooks{
//	    OnBuildComplete: func(ctx context.Context, s xcbalance.Summary) error {
//	        return recordSpread(s.Ledger.Spread())
//	    },
//	}
//	lb, err := xcbalance.NewLoadBalancer(&cfg, comm, mol, grid, basis, xcbalance.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *balancerOptions) {
		o.hooks = hooks
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewLoadBalancer
//
// Example:
//
//	collector := metrics.NewPrometheus(prometheus.DefaultRegisterer, "")
//	lb, err := xcbalance.NewLoadBalancer(&cfg, comm, mol, grid, basis, xcbalance.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *balancerOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewLoadBalancer
//
// Example:
//
//	logger := logging.NewSlogText(os.Stderr, slog.LevelInfo)
//	lb, err := xcbalance.NewLoadBalancer(&cfg, comm, mol, grid, basis, xcbalance.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *balancerOptions) {
		o.logger = logger
	}
}

// WithSummaryPublisher publishes the build summary after every successful build.
//
// Publishing failures are logged and reported to the OnError hook; they never
// fail the build.
//
// Example:
//
//	pub, _ := report.NewPublisher(ctx, js, cfg.Report.Bucket, cfg.Report.KeyPrefix, cfg.Report.TTL)
//	lb, err := xcbalance.NewLoadBalancer(&cfg, comm, mol, grid, basis, xcbalance.WithSummaryPublisher(pub))
func WithSummaryPublisher(publisher SummaryPublisher) Option {
	return func(o *balancerOptions) {
		o.publisher = publisher
	}
}

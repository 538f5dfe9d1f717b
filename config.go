package xcbalance

import (
	"fmt"
	"math/bits"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/xcbalance/strategy"
)

// ReportConfig configures the NATS JetStream KV bucket used for build summaries.
type ReportConfig struct {
	// Bucket is the KV bucket name holding one summary per rank.
	Bucket string `yaml:"bucket"`

	// KeyPrefix prefixes every summary key ("<prefix>.rank-<n>").
	KeyPrefix string `yaml:"keyPrefix"`

	// TTL is how long summaries remain in KV (0 = no expiration).
	TTL time.Duration `yaml:"ttl"`
}

// Config is the configuration for the LoadBalancer.
//
// Every rank of a job must use the same configuration; otherwise the ranks
// compute different ledgers and the task lists no longer partition the grid.
type Config struct {
	// Strategy selects the distribution strategy by registry name.
	// Case-insensitive; "default" and "replicated" select "replicated-petite".
	Strategy string `yaml:"strategy"`

	// PadValue pads every task up to a multiple of this many points.
	// 1 disables padding. Powers of two suit vectorized kernels.
	PadValue int `yaml:"padValue"`

	// DerivativeOrder is the highest basis derivative order evaluated downstream.
	// It feeds the cost model only. 0 is valid (no gradients).
	DerivativeOrder int `yaml:"derivativeOrder"`

	// AtomsPerRound is the number of atoms whose candidates are distributed together.
	// 1 reproduces per-atom assignment.
	AtomsPerRound int `yaml:"atomsPerRound"`

	// Parallelism bounds the goroutines screening batches of one atom (0 = GOMAXPROCS).
	Parallelism int `yaml:"parallelism"`

	// Report controls summary publishing.
	Report ReportConfig `yaml:"report"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		Strategy:        strategy.NameDefault,
		PadValue:        1,
		DerivativeOrder: 1,
		AtomsPerRound:   1,
		Parallelism:     0, // GOMAXPROCS
		Report: ReportConfig{
			Bucket:    "xcbalance-report",
			KeyPrefix: "summary",
			TTL:       0,
		},
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Strategy == "" {
		cfg.Strategy = defaults.Strategy
	}
	if cfg.PadValue == 0 {
		cfg.PadValue = defaults.PadValue
	}
	if cfg.AtomsPerRound == 0 {
		cfg.AtomsPerRound = defaults.AtomsPerRound
	}
	if cfg.Report.Bucket == "" {
		cfg.Report.Bucket = defaults.Report.Bucket
	}
	if cfg.Report.KeyPrefix == "" {
		cfg.Report.KeyPrefix = defaults.Report.KeyPrefix
	}
	// Note: DerivativeOrder, Parallelism and Report.TTL treat 0 as a valid value
}

// LoadConfig reads a YAML configuration file.
//
// Fields missing from the file keep their DefaultConfig values.
//
// Parameters:
//   - path: Path to the YAML file
//
// Returns:
//   - Config: Parsed configuration (not yet validated)
//   - error: Read or parse error
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	return ParseConfig(data)
}

// ParseConfig parses YAML configuration data over DefaultConfig.
//
// Example:
//
//	cfg, err := xcbalance.ParseConfig([]byte("strategy: replicated-fillin\npadValue: 8\n"))
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return cfg, nil
}

// Validate checks configuration constraints and returns error for invalid values.
//
// Hard Validation Rules:
//   - Strategy names a registered strategy
//   - PadValue >= 1
//   - DerivativeOrder >= 0
//   - AtomsPerRound >= 1
//   - Parallelism >= 0
//   - Report.TTL >= 0
//
// Returns:
//   - error: Validation error wrapping ErrInvalidConfig or ErrUnknownStrategy, nil if valid
func (cfg *Config) Validate() error {
	if _, err := strategy.Lookup(cfg.Strategy); err != nil {
		return err
	}

	if cfg.PadValue < 1 {
		return fmt.Errorf("%w: PadValue must be >= 1, got %d", ErrInvalidConfig, cfg.PadValue)
	}

	if cfg.DerivativeOrder < 0 {
		return fmt.Errorf("%w: DerivativeOrder must be >= 0, got %d", ErrInvalidConfig, cfg.DerivativeOrder)
	}

	if cfg.AtomsPerRound < 1 {
		return fmt.Errorf("%w: AtomsPerRound must be >= 1, got %d", ErrInvalidConfig, cfg.AtomsPerRound)
	}

	if cfg.Parallelism < 0 {
		return fmt.Errorf("%w: Parallelism must be >= 0, got %d", ErrInvalidConfig, cfg.Parallelism)
	}

	if cfg.Report.TTL < 0 {
		return fmt.Errorf("%w: Report.TTL must be >= 0, got %v", ErrInvalidConfig, cfg.Report.TTL)
	}

	return nil
}

// ValidateWithWarnings checks configuration and logs warnings for non-recommended values.
//
// This is called after Validate() in NewLoadBalancer() to provide operator guidance.
//
// Parameters:
//   - logger: Logger instance for warning output
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	if cfg.PadValue > 1 && bits.OnesCount(uint(cfg.PadValue)) != 1 { //nolint:gosec // validated positive
		logger.Warn(
			"PadValue is not a power of two, vector kernels may not benefit",
			"padValue", cfg.PadValue,
		)
	}

	if cfg.AtomsPerRound > 1 {
		logger.Warn(
			"AtomsPerRound > 1 changes assignments versus per-atom rounds; all ranks must agree",
			"atomsPerRound", cfg.AtomsPerRound,
		)
	}
}

// TestConfig returns a configuration suited to fast, deterministic tests.
//
// Screening runs on two goroutines so that tests exercise the parallel
// assembly path regardless of the host.
//
// Returns:
//   - Config: Configuration for tests
//
// Example:
//
//	cfg := xcbalance.TestConfig()
//	cfg.PadValue = 4
//	lb, err := xcbalance.NewLoadBalancer(&cfg, comm, mol, grid, basis)
func TestConfig() Config {
	cfg := DefaultConfig()
	cfg.Parallelism = 2
	cfg.Report.Bucket = "xcbalance-report-test"

	return cfg
}

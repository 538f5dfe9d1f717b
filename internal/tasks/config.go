package tasks

import (
	"fmt"
	"runtime"

	"github.com/arloliu/xcbalance/internal/logging"
	"github.com/arloliu/xcbalance/internal/metrics"
	"github.com/arloliu/xcbalance/types"
)

// Config holds the inputs of a Builder.
type Config struct {
	// Required
	Molecule types.Molecule
	Grid     types.MolecularGrid
	Basis    types.Basis
	Screener types.Screener
	Strategy types.DistributionStrategy
	Rank     int
	Size     int

	// Optional
	Secondary       types.Basis    // Screened alongside Basis when set
	Cost            types.CostFunc // Default: types.DefaultCost
	PadValue        int            // Default: 1 (no padding)
	DerivativeOrder int            // Default: 0
	AtomsPerRound   int            // Default: 1
	Parallelism     int            // Default: GOMAXPROCS
	Logger          types.Logger
	Metrics         types.MetricsCollector
}

// Validate checks required fields and value ranges.
func (c *Config) Validate() error {
	switch {
	case c.Grid == nil:
		return fmt.Errorf("grid: %w", types.ErrMissingCollaborator)
	case c.Basis == nil:
		return fmt.Errorf("basis: %w", types.ErrMissingCollaborator)
	case c.Screener == nil:
		return fmt.Errorf("screener: %w", types.ErrMissingCollaborator)
	case c.Strategy == nil:
		return fmt.Errorf("strategy: %w", types.ErrMissingCollaborator)
	}

	if len(c.Molecule) == 0 {
		return types.ErrEmptyMolecule
	}

	if c.Size < 1 || c.Rank < 0 || c.Rank >= c.Size {
		return fmt.Errorf("%w: rank %d of size %d", types.ErrInvalidCommunicator, c.Rank, c.Size)
	}

	if c.PadValue < 0 || c.AtomsPerRound < 0 || c.Parallelism < 0 || c.DerivativeOrder < 0 {
		return fmt.Errorf("%w: negative pad value, round size, parallelism or derivative order", types.ErrInvalidConfig)
	}

	return nil
}

// SetDefaults fills unset optional fields.
func (c *Config) SetDefaults() {
	if c.Cost == nil {
		c.Cost = types.DefaultCost
	}

	if c.PadValue == 0 {
		c.PadValue = 1
	}

	if c.AtomsPerRound == 0 {
		c.AtomsPerRound = 1
	}

	if c.Parallelism == 0 {
		c.Parallelism = runtime.GOMAXPROCS(0)
	}

	if c.Logger == nil {
		c.Logger = logging.NewNop()
	}

	if c.Metrics == nil {
		c.Metrics = metrics.NewNop()
	}
}

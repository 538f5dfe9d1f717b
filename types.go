package xcbalance

import "github.com/arloliu/xcbalance/types"

// Re-export types from the internal types package.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing internal packages
// to depend on `types` without depending on the root `xcbalance` package, while
// still providing a convenient `xcbalance.Task`, `xcbalance.Logger`, etc. for users.
type (
	State     = types.State
	Task      = types.Task
	Screening = types.Screening
	Point     = types.Point
	Atom      = types.Atom
	Molecule  = types.Molecule
	Batch     = types.Batch
	Shell     = types.Shell
	BasisSet  = types.BasisSet
	Ledger    = types.Ledger
	Summary   = types.Summary
	CostFunc  = types.CostFunc
)

// Re-export interfaces from the internal types package for convenience.
type (
	MolecularGrid        = types.MolecularGrid
	GridBatcher          = types.GridBatcher
	Basis                = types.Basis
	Screener             = types.Screener
	Communicator         = types.Communicator
	DistributionStrategy = types.DistributionStrategy
	MetricsCollector     = types.MetricsCollector
	Logger               = types.Logger
	Hooks                = types.Hooks
	SummaryPublisher     = types.SummaryPublisher
)

// Re-export State constants from the internal types package.
const (
	StateUnbuilt = types.StateUnbuilt
	StateBuilt   = types.StateBuilt
	StateFailed  = types.StateFailed
)

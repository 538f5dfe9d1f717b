package tasks

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/arloliu/xcbalance/types"
)

// Distributor assigns rounds of candidates to ranks and keeps the local share.
//
// The distributor owns the ledger for one build. It is not safe for
// concurrent use.
type Distributor struct {
	strategy     types.DistributionStrategy
	cost         func(*types.Task) int64
	rank         int
	padValue     int
	ledger       types.Ledger
	local        []types.Task
	assigned     int
	localPadding int
}

// NewDistributor creates a distributor from a defaulted, validated config.
func NewDistributor(cfg *Config) *Distributor {
	costFn, deriv, natoms := cfg.Cost, cfg.DerivativeOrder, len(cfg.Molecule)

	return &Distributor{
		strategy: cfg.Strategy,
		cost: func(task *types.Task) int64 {
			return costFn(task, deriv, natoms)
		},
		rank:     cfg.Rank,
		padValue: cfg.PadValue,
		ledger:   types.NewLedger(cfg.Size),
	}
}

// Distribute assigns one round of candidates.
//
// Candidates are sorted by global batch index and padded before the strategy
// sees them, so every rank presents the strategy with the same sequence.
// Candidates assigned to the local rank are retained.
//
// Parameters:
//   - round: Candidates of one round (reordered in place)
//
// Returns:
//   - error: Strategy failure or an out-of-range rank
func (d *Distributor) Distribute(round []types.Candidate) error {
	if len(round) == 0 {
		return nil
	}

	slices.SortFunc(round, func(a, b types.Candidate) int {
		return cmp.Compare(a.BatchIndex, b.BatchIndex)
	})

	padded := make([]int, len(round))
	for i := range round {
		padded[i] = PadPoints(&round[i].Task, d.padValue)
	}

	ranks, err := d.strategy.Assign(round, d.ledger, d.cost)
	if err != nil {
		return fmt.Errorf("strategy %s: %w", d.strategy.Name(), err)
	}

	if len(ranks) != len(round) {
		return fmt.Errorf("strategy %s returned %d ranks for %d candidates", d.strategy.Name(), len(ranks), len(round))
	}

	for i, rank := range ranks {
		if rank < 0 || rank >= len(d.ledger) {
			return fmt.Errorf("strategy %s assigned batch %d to rank %d of %d", d.strategy.Name(), round[i].BatchIndex, rank, len(d.ledger))
		}

		if rank == d.rank {
			d.local = append(d.local, round[i].Task)
			d.localPadding += padded[i]
		}
	}
	d.assigned += len(round)

	return nil
}

// Local returns the tasks kept so far, in assignment order.
func (d *Distributor) Local() []types.Task {
	return d.local
}

// Ledger returns the live ledger.
func (d *Distributor) Ledger() types.Ledger {
	return d.ledger
}

// Assigned returns the number of candidates assigned across all ranks.
func (d *Distributor) Assigned() int {
	return d.assigned
}

// LocalPaddingPoints returns the padding points added to local tasks.
func (d *Distributor) LocalPaddingPoints() int {
	return d.localPadding
}

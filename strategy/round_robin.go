package strategy

import "github.com/arloliu/xcbalance/types"

// NameRoundRobin is the registry name of RoundRobin.
const NameRoundRobin = "replicated-roundrobin"

// RoundRobin implements cost-agnostic round-robin assignment.
type RoundRobin struct{}

var _ types.DistributionStrategy = (*RoundRobin)(nil)

// NewRoundRobin creates a new round-robin strategy.
//
// The strategy places a candidate on rank BatchIndex mod size. It ignores
// cost when choosing but still charges the ledger, so summaries and metrics
// show the imbalance it produces.
func NewRoundRobin() *RoundRobin {
	return &RoundRobin{}
}

// Name returns "replicated-roundrobin".
func (rr *RoundRobin) Name() string {
	return NameRoundRobin
}

// Assign calculates rank assignments using round-robin distribution.
//
// Parameters:
//   - round: Candidates sorted by batch index
//   - ledger: Cumulative cost per rank (mutated)
//   - cost: Candidate cost function
//
// Returns:
//   - []int: Rank of each candidate, aligned with round
//   - error: ErrNoRanks if the ledger is empty
func (rr *RoundRobin) Assign(round []types.Candidate, ledger types.Ledger, cost func(*types.Task) int64) ([]int, error) {
	if len(ledger) == 0 {
		return nil, ErrNoRanks
	}

	ranks := make([]int, len(round))
	for i := range round {
		rank := round[i].BatchIndex % len(ledger)
		ledger.Charge(rank, cost(&round[i].Task))
		ranks[i] = rank
	}

	return ranks, nil
}

package strategy

import "github.com/arloliu/xcbalance/types"

// NameLeastLoaded is the registry name of LeastLoaded.
const NameLeastLoaded = "replicated-petite"

// LeastLoaded implements greedy least-loaded assignment.
type LeastLoaded struct{}

var _ types.DistributionStrategy = (*LeastLoaded)(nil)

// NewLeastLoaded creates a new greedy least-loaded strategy.
//
// Candidates are taken in the order given (batch index ascending). Each one
// goes to the rank currently carrying the least cumulative cost, ties to the
// lowest rank, and that rank is charged with the candidate's cost. Decisions
// are streaming and never revised.
//
// Example:
//
//	ranks, err := strategy.NewLeastLoaded().Assign(round, ledger, cost)
func NewLeastLoaded() *LeastLoaded {
	return &LeastLoaded{}
}

// Name returns "replicated-petite".
func (s *LeastLoaded) Name() string {
	return NameLeastLoaded
}

// Assign places every candidate on the least-loaded rank at the time it is considered.
//
// Parameters:
//   - round: Candidates sorted by batch index
//   - ledger: Cumulative cost per rank (mutated)
//   - cost: Candidate cost function
//
// Returns:
//   - []int: Rank of each candidate, aligned with round
//   - error: ErrNoRanks if the ledger is empty
func (s *LeastLoaded) Assign(round []types.Candidate, ledger types.Ledger, cost func(*types.Task) int64) ([]int, error) {
	if len(ledger) == 0 {
		return nil, ErrNoRanks
	}

	ranks := make([]int, len(round))
	for i := range round {
		rank := ledger.MinRank()
		ledger.Charge(rank, cost(&round[i].Task))
		ranks[i] = rank
	}

	return ranks, nil
}

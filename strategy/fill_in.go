package strategy

import (
	"cmp"
	"slices"

	"github.com/arloliu/xcbalance/types"
)

// NameFillIn is the registry name of FillIn.
const NameFillIn = "replicated-fillin"

// FillIn implements longest-task-first assignment within a round.
type FillIn struct{}

var _ types.DistributionStrategy = (*FillIn)(nil)

// NewFillIn creates a new fill-in strategy.
//
// Within a round, candidates are visited by decreasing cost (ties by
// position in the round, i.e. batch index) and each is placed on the
// least-loaded rank. Large tasks are placed first and the small ones fill the
// gaps, which tightens balance when rounds span several atoms.
func NewFillIn() *FillIn {
	return &FillIn{}
}

// Name returns "replicated-fillin".
func (s *FillIn) Name() string {
	return NameFillIn
}

// Assign places candidates largest first on the least-loaded rank.
//
// Parameters:
//   - round: Candidates sorted by batch index
//   - ledger: Cumulative cost per rank (mutated)
//   - cost: Candidate cost function
//
// Returns:
//   - []int: Rank of each candidate, aligned with round
//   - error: ErrNoRanks if the ledger is empty
func (s *FillIn) Assign(round []types.Candidate, ledger types.Ledger, cost func(*types.Task) int64) ([]int, error) {
	if len(ledger) == 0 {
		return nil, ErrNoRanks
	}

	costs := make([]int64, len(round))
	order := make([]int, len(round))
	for i := range round {
		costs[i] = cost(&round[i].Task)
		order[i] = i
	}

	slices.SortStableFunc(order, func(a, b int) int {
		// Descending cost; stable sort keeps batch order for equal costs
		return cmp.Compare(costs[b], costs[a])
	})

	ranks := make([]int, len(round))
	for _, i := range order {
		rank := ledger.MinRank()
		ledger.Charge(rank, costs[i])
		ranks[i] = rank
	}

	return ranks, nil
}

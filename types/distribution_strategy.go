package types

// DistributionStrategy decides which rank owns each candidate task of an assignment round.
//
// Strategies implement different balancing heuristics:
//   - LeastLoaded: Greedy least-loaded rank in batch order (default)
//   - FillIn: Largest task first onto the least-loaded rank
//   - RoundRobin: Batch index modulo rank count
//   - Affinity: Consistent hashing of the task equivalence key
//
// Strategy implementations must:
//   - Be deterministic (same round and ledger → same ranks and same ledger)
//   - Charge the ledger with the cost of every candidate they place
//   - Not modify the candidates
//   - Be safe for concurrent use by independent balancers
type DistributionStrategy interface {
	// Name returns the canonical strategy name (e.g., "replicated-petite").
	Name() string

	// Assign places every candidate of a round on a rank.
	//
	// Parameters:
	//   - round: Padded candidates, sorted by BatchIndex ascending
	//   - ledger: Cumulative cost per rank, carried across rounds
	//   - cost: Cost of a candidate task
	//
	// Returns:
	//   - []int: Rank of round[i] at index i
	//   - error: ErrNoRanks when the ledger is empty
	Assign(round []Candidate, ledger Ledger, cost func(*Task) int64) ([]int, error)
}

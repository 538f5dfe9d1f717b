package strategy

import (
	"github.com/arloliu/xcbalance/internal/hash"
	"github.com/arloliu/xcbalance/internal/logging"
	"github.com/arloliu/xcbalance/types"
)

// NameAffinity is the registry name of Affinity.
const NameAffinity = "replicated-affinity"

const (
	defaultVirtualNodes      = 150
	defaultOverloadThreshold = 1.3
	minOverloadThreshold     = 1.0
)

// Affinity implements consistent hashing of the task equivalence key with a soft load cap.
type Affinity struct {
	virtualNodes      int
	hashSeed          uint64
	overloadThreshold float64
	logger            types.Logger
}

var _ types.DistributionStrategy = (*Affinity)(nil)

// AffinityOption configures an Affinity strategy.
type AffinityOption func(*Affinity)

// NewAffinity creates a new affinity strategy.
//
// Each candidate is hashed on (parent atom, primary shell list) onto a ring of
// ranks. Equivalent tasks therefore land on the same rank, where the merge
// pass collapses them. If the ring's choice would push that rank above
// overloadThreshold times the mean load (including the candidate), the
// candidate goes to the least-loaded rank instead.
//
// Parameters:
//   - opts: Optional configuration (WithVirtualNodes, WithHashSeed, WithOverloadThreshold, WithLogger)
//
// Returns:
//   - *Affinity: Initialized affinity strategy
//
// Example:
//
//	s := strategy.NewAffinity(
//	    strategy.WithVirtualNodes(300),
//	    strategy.WithOverloadThreshold(1.5),
//	)
func NewAffinity(opts ...AffinityOption) *Affinity {
	a := &Affinity{
		virtualNodes:      defaultVirtualNodes,
		hashSeed:          0,
		overloadThreshold: defaultOverloadThreshold,
		logger:            logging.NewNop(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}

	a.normalizeConfig()

	return a
}

// WithVirtualNodes sets the number of virtual nodes per rank.
//
// Higher values provide better distribution but increase memory usage.
// Recommended range: 100-300 (default: 150).
func WithVirtualNodes(nodes int) AffinityOption {
	return func(a *Affinity) {
		a.virtualNodes = nodes
	}
}

// WithHashSeed sets a custom hash seed. All ranks must use the same seed.
func WithHashSeed(seed uint64) AffinityOption {
	return func(a *Affinity) {
		a.hashSeed = seed
	}
}

// WithOverloadThreshold sets the soft cap as a multiple of the mean rank load.
// A threshold of 0 disables the cap (pure hashing).
func WithOverloadThreshold(threshold float64) AffinityOption {
	return func(a *Affinity) {
		a.overloadThreshold = threshold
	}
}

// WithLogger sets the logger used for configuration warnings and diagnostics.
func WithLogger(logger types.Logger) AffinityOption {
	return func(a *Affinity) {
		a.logger = logger
	}
}

// Name returns "replicated-affinity".
func (a *Affinity) Name() string {
	return NameAffinity
}

// Assign places candidates by hashing their equivalence key onto the rank ring.
//
// Parameters:
//   - round: Candidates sorted by batch index
//   - ledger: Cumulative cost per rank (mutated)
//   - cost: Candidate cost function
//
// Returns:
//   - []int: Rank of each candidate, aligned with round
//   - error: ErrNoRanks if the ledger is empty
func (a *Affinity) Assign(round []types.Candidate, ledger types.Ledger, cost func(*types.Task) int64) ([]int, error) {
	if len(ledger) == 0 {
		return nil, ErrNoRanks
	}

	ring := hash.NewRing(len(ledger), a.virtualNodes, a.hashSeed)
	ranks := make([]int, len(round))
	overflowCount := 0

	for i := range round {
		task := &round[i].Task
		c := cost(task)
		rank := ring.RankFor(hash.TaskKey(task, a.hashSeed))

		if a.overloaded(ledger, rank, c) {
			rank = ledger.MinRank()
			overflowCount++
		}

		ledger.Charge(rank, c)
		ranks[i] = rank
	}

	if overflowCount > 0 {
		a.logger.Debug(
			"affinity strategy exceeded soft cap",
			"overflow_count", overflowCount,
			"round_size", len(round),
			"overload_threshold", a.overloadThreshold,
		)
	}

	return ranks, nil
}

func (a *Affinity) overloaded(ledger types.Ledger, rank int, cost int64) bool {
	if a.overloadThreshold <= 0 {
		return false
	}

	mean := float64(ledger.Total()+cost) / float64(len(ledger))

	return float64(ledger[rank]+cost) > mean*a.overloadThreshold
}

func (a *Affinity) normalizeConfig() {
	if a.logger == nil {
		a.logger = logging.NewNop()
	}

	if a.virtualNodes < 1 {
		a.logger.Warn("virtual nodes must be positive; clamping to 1", "provided", a.virtualNodes, "using", 1)
		a.virtualNodes = 1
	}

	if a.overloadThreshold != 0 && a.overloadThreshold < minOverloadThreshold {
		a.logger.Warn("overload threshold too low; clamping to minimum", "provided", a.overloadThreshold, "using", minOverloadThreshold)
		a.overloadThreshold = minOverloadThreshold
	}
}

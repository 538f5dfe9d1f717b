package types

// Ledger holds one cumulative cost counter per rank.
//
// A ledger lives for exactly one balancing pass. Every rank computes the full
// ledger so that it can decide locally which tasks it owns.
type Ledger []int64

// NewLedger creates a zeroed ledger for size ranks.
func NewLedger(size int) Ledger {
	return make(Ledger, size)
}

// MinRank returns the rank carrying the least cumulative cost.
// Ties go to the lowest rank index. Returns -1 for an empty ledger.
func (l Ledger) MinRank() int {
	if len(l) == 0 {
		return -1
	}

	minRank := 0
	for rank := 1; rank < len(l); rank++ {
		if l[rank] < l[minRank] {
			minRank = rank
		}
	}

	return minRank
}

// Charge adds cost to the given rank.
func (l Ledger) Charge(rank int, cost int64) {
	l[rank] += cost
}

// Spread returns the difference between the most and the least loaded rank.
func (l Ledger) Spread() int64 {
	if len(l) == 0 {
		return 0
	}

	lo, hi := l[0], l[0]
	for _, v := range l[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	return hi - lo
}

// Total returns the sum of all counters.
func (l Ledger) Total() int64 {
	var total int64
	for _, v := range l {
		total += v
	}

	return total
}

// Clone returns an independent copy of the ledger.
func (l Ledger) Clone() Ledger {
	return append(Ledger(nil), l...)
}

package testing

import "github.com/arloliu/xcbalance/types"

// FakeComm is a fixed communicator for in-process multi-rank simulations.
type FakeComm struct {
	RankIndex int
	JobSize   int
}

var _ types.Communicator = FakeComm{}

// Rank returns RankIndex.
func (c FakeComm) Rank() int { return c.RankIndex }

// Size returns JobSize.
func (c FakeComm) Size() int { return c.JobSize }

// Ranks returns one communicator per rank of a job of the given size.
func Ranks(size int) []FakeComm {
	comms := make([]FakeComm, size)
	for i := range comms {
		comms[i] = FakeComm{RankIndex: i, JobSize: size}
	}

	return comms
}

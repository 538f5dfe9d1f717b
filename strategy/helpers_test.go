package strategy

import "github.com/arloliu/xcbalance/types"

func candidates(sizes ...int) []types.Candidate {
	round := make([]types.Candidate, len(sizes))
	for i, n := range sizes {
		round[i] = types.Candidate{
			BatchIndex: i,
			Task: types.Task{
				ParentIndex: 0,
				PointCount:  n,
				Primary:     types.Screening{ShellList: []int32{int32(i)}, NBE: 1},
			},
		}
	}

	return round
}

func pointCost(task *types.Task) int64 {
	return int64(task.PointCount)
}

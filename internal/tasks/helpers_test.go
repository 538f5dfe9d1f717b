package tasks

import (
	"fmt"

	"github.com/arloliu/xcbalance/types"
)

// fakeBatcher serves fixed batches; Lower[0] carries the batch id for fakeScreener.
type fakeBatcher struct {
	batches []types.Batch
}

func (f *fakeBatcher) Recenter(types.Point) {}

func (f *fakeBatcher) NumBatches() int { return len(f.batches) }

func (f *fakeBatcher) Batch(i int) types.Batch { return f.batches[i] }

// fakeGrid maps atomic numbers to batch sizes.
type fakeGrid map[int][]int

func (g fakeGrid) Batcher(z int) (types.GridBatcher, error) {
	sizes, ok := g[z]
	if !ok {
		return nil, fmt.Errorf("element %d: %w", z, types.ErrGridNotFound)
	}

	b := &fakeBatcher{}
	for id, n := range sizes {
		batch := types.Batch{
			Lower: types.Point{float64(id), float64(z), 0},
			Upper: types.Point{float64(id) + 1, float64(z), 1},
		}
		for p := range n {
			batch.Points = append(batch.Points, types.Point{float64(id), float64(p), float64(z)})
			batch.Weights = append(batch.Weights, 0.5)
		}
		b.batches = append(b.batches, batch)
	}

	return b, nil
}

// fakeScreener returns the screening registered for (element, batch id), or
// a single shell equal to the batch id when none is registered.
type fakeScreener struct {
	byBatch map[[2]int]types.Screening
}

func (s *fakeScreener) Screen(_ types.Basis, lower, _ types.Point) types.Screening {
	key := [2]int{int(lower[1]), int(lower[0])}
	if sc, ok := s.byBatch[key]; ok {
		return sc.Clone()
	}

	return types.Screening{ShellList: []int32{int32(lower[0])}, NBE: 1}
}

func testBasis(nshells int) types.BasisSet {
	basis := make(types.BasisSet, nshells)
	for i := range basis {
		basis[i] = types.Shell{NumFunctions: 1, CutoffRadius: 1}
	}

	return basis
}

func pointCountCost(task *types.Task, _, _ int) int64 {
	return int64(task.PointCount)
}

package source

import (
	"fmt"
	"slices"
	"sync"

	"github.com/arloliu/xcbalance/types"
)

// Static implements a molecular grid with fixed batches per element.
//
// Batches are stored relative to the nucleus; the batcher returned for an
// atom shifts points and bounding boxes onto the atom's center.
type Static struct {
	mu      sync.RWMutex
	batches map[int][]types.Batch
}

var _ types.MolecularGrid = (*Static)(nil)

// NewStatic creates a new static grid source.
//
// Parameters:
//   - batches: Batches per atomic number, relative to the nucleus
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	grid := source.NewStatic(map[int][]types.Batch{
//	    1: source.NewCubeGrid(2.0, 8, 2),
//	    8: source.NewCubeGrid(3.0, 12, 3),
//	})
//	lb, err := xcbalance.NewLoadBalancer(&cfg, comm, mol, grid, basis)
func NewStatic(batches map[int][]types.Batch) *Static {
	s := &Static{batches: make(map[int][]types.Batch, len(batches))}
	for z, b := range batches {
		s.batches[z] = slices.Clone(b)
	}

	return s
}

// Batcher returns a batcher over the batches of the given element.
//
// Returns:
//   - types.GridBatcher: Batcher for one atom
//   - error: types.ErrGridNotFound (wrapped) when the element is unknown
func (s *Static) Batcher(atomicNumber int) (types.GridBatcher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	batches, ok := s.batches[atomicNumber]
	if !ok {
		return nil, fmt.Errorf("element %d: %w", atomicNumber, types.ErrGridNotFound)
	}

	return &staticBatcher{batches: batches}, nil
}

// Update replaces the batches of an element.
//
// Batchers created before the update keep serving the old batches.
//
// Parameters:
//   - atomicNumber: Element to update
//   - batches: New batches, relative to the nucleus
func (s *Static) Update(atomicNumber int, batches []types.Batch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.batches[atomicNumber] = slices.Clone(batches)
}

// staticBatcher serves shifted copies of fixed batches.
type staticBatcher struct {
	batches []types.Batch
	center  types.Point
}

func (b *staticBatcher) Recenter(center types.Point) {
	b.center = center
}

func (b *staticBatcher) NumBatches() int {
	return len(b.batches)
}

// Batch returns batch i shifted onto the center. Safe for concurrent use.
func (b *staticBatcher) Batch(i int) types.Batch {
	src := b.batches[i]
	out := types.Batch{
		Lower:   shift(src.Lower, b.center),
		Upper:   shift(src.Upper, b.center),
		Points:  make([]types.Point, len(src.Points)),
		Weights: slices.Clone(src.Weights),
	}
	for j, p := range src.Points {
		out.Points[j] = shift(p, b.center)
	}

	return out
}

func shift(p, by types.Point) types.Point {
	return types.Point{p[0] + by[0], p[1] + by[1], p[2] + by[2]}
}

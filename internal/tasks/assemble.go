package tasks

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/xcbalance/types"
)

// BatchStats counts batch outcomes.
type BatchStats struct {
	Seen        int
	Accepted    int
	Empty       int
	ScreenedOut int
}

// Add accumulates other into s.
func (s *BatchStats) Add(other BatchStats) {
	s.Seen += other.Seen
	s.Accepted += other.Accepted
	s.Empty += other.Empty
	s.ScreenedOut += other.ScreenedOut
}

// AtomResult is the output of assembling one atom.
type AtomResult struct {
	// Candidates in batch order.
	Candidates []types.Candidate

	// NumBatches is the batch count of the atom's grid, empty batches included.
	NumBatches int

	Stats BatchStats
}

// Assembler turns the grid batches of an atom into candidate tasks.
type Assembler struct {
	grid        types.MolecularGrid
	basis       types.Basis
	secondary   types.Basis
	screener    types.Screener
	parallelism int
}

// NewAssembler creates an assembler from a defaulted, validated config.
func NewAssembler(cfg *Config) *Assembler {
	return &Assembler{
		grid:        cfg.Grid,
		basis:       cfg.Basis,
		secondary:   cfg.Secondary,
		screener:    cfg.Screener,
		parallelism: max(cfg.Parallelism, 1),
	}
}

// AssembleAtom builds the candidates for one atom.
//
// Batches are split into contiguous chunks, one per worker goroutine. Each
// worker fills a private buffer; buffers are concatenated in chunk order after
// all workers finish, so the result is in batch order without locking.
//
// Parameters:
//   - ctx: Checked between batches
//   - atomIndex: Index of the atom in the molecule
//   - atom: The atom
//   - distNearest: Nearest-neighbor distance of the atom
//   - offset: Global index of the atom's first batch
//
// Returns:
//   - AtomResult: Candidates, batch count and outcome counters
//   - error: Grid lookup, basis mismatch or context error
func (a *Assembler) AssembleAtom(ctx context.Context, atomIndex int, atom types.Atom, distNearest float64, offset int) (AtomResult, error) {
	batcher, err := a.grid.Batcher(atom.AtomicNumber)
	if err != nil {
		return AtomResult{}, fmt.Errorf("atom %d: %w", atomIndex, err)
	}

	batcher.Recenter(atom.Center)
	numBatches := batcher.NumBatches()
	if numBatches == 0 {
		return AtomResult{}, nil
	}

	workers := min(a.parallelism, numBatches)
	chunk := (numBatches + workers - 1) / workers
	buffers := make([][]types.Candidate, workers)
	stats := make([]BatchStats, workers)

	g, gctx := errgroup.WithContext(ctx)
	for w := range workers {
		lo := w * chunk
		hi := min(lo+chunk, numBatches)
		g.Go(func() error {
			for ib := lo; ib < hi; ib++ {
				if err := gctx.Err(); err != nil {
					return err
				}

				stats[w].Seen++
				batch := batcher.Batch(ib)
				if len(batch.Points) == 0 {
					stats[w].Empty++
					continue
				}

				task, ok, err := a.buildTask(atomIndex, distNearest, &batch)
				if err != nil {
					return fmt.Errorf("atom %d batch %d: %w", atomIndex, ib, err)
				}
				if !ok {
					stats[w].ScreenedOut++
					continue
				}

				stats[w].Accepted++
				buffers[w] = append(buffers[w], types.Candidate{BatchIndex: offset + ib, Task: task})
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return AtomResult{}, err
	}

	result := AtomResult{NumBatches: numBatches}
	for w := range workers {
		result.Candidates = append(result.Candidates, buffers[w]...)
		result.Stats.Add(stats[w])
	}

	return result, nil
}

// buildTask screens one non-empty batch. ok is false when no primary shell survives.
func (a *Assembler) buildTask(atomIndex int, distNearest float64, batch *types.Batch) (types.Task, bool, error) {
	if len(batch.Weights) != len(batch.Points) {
		return types.Task{}, false, fmt.Errorf("%w: %d points but %d weights", types.ErrInvalidConfig, len(batch.Points), len(batch.Weights))
	}

	primary := a.screener.Screen(a.basis, batch.Lower, batch.Upper)
	if len(primary.ShellList) == 0 {
		return types.Task{}, false, nil
	}
	if err := checkScreening(a.basis, primary); err != nil {
		return types.Task{}, false, err
	}

	task := types.Task{
		ParentIndex: atomIndex,
		PointCount:  len(batch.Points),
		Points:      slices.Clone(batch.Points),
		Weights:     slices.Clone(batch.Weights),
		Primary:     primary,
		DistNearest: distNearest,
	}

	if a.secondary != nil {
		secondary := a.screener.Screen(a.secondary, batch.Lower, batch.Upper)
		if err := checkScreening(a.secondary, secondary); err != nil {
			return types.Task{}, false, fmt.Errorf("secondary basis: %w", err)
		}
		task.Secondary = &secondary
	}

	return task, true, nil
}

func checkScreening(basis types.Basis, s types.Screening) error {
	nshells := basis.NumShells()
	for _, sh := range s.ShellList {
		if sh < 0 || int(sh) >= nshells {
			return fmt.Errorf("%w: shell %d outside [0, %d)", types.ErrBasisMismatch, sh, nshells)
		}
	}

	if nbf := basis.NumFunctions(); s.NBE < 0 || s.NBE > nbf {
		return fmt.Errorf("%w: nbe %d exceeds %d functions", types.ErrBasisMismatch, s.NBE, nbf)
	}

	return nil
}

package testutil

import (
	"math/rand/v2"

	"github.com/arloliu/xcbalance/source"
	xctest "github.com/arloliu/xcbalance/testing"
	"github.com/arloliu/xcbalance/types"
)

// Carbon is the atomic number of carbon, the third element of random systems.
const Carbon = 6

// RandomSystem generates a reproducible molecule with grids and basis.
//
// Atoms are placed on a jittered lattice with 2.5 bohr spacing so that
// neighboring grids overlap, and elements are drawn from H, C and O. The
// same seed always produces the same system.
//
// Parameters:
//   - seed: Random seed
//   - atoms: Number of atoms (must be positive)
//
// Returns:
//   - xctest.System: Generated system
func RandomSystem(seed uint64, atoms int) xctest.System {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	elements := []int{xctest.Hydrogen, Carbon, xctest.Oxygen}

	side := 1
	for side*side*side < atoms {
		side++
	}

	mol := make(types.Molecule, atoms)
	for i := range mol {
		x, y, z := i%side, (i/side)%side, i/(side*side)
		mol[i] = types.Atom{
			AtomicNumber: elements[rng.IntN(len(elements))],
			Center: types.Point{
				2.5*float64(x) + 0.4*(rng.Float64()-0.5),
				2.5*float64(y) + 0.4*(rng.Float64()-0.5),
				2.5*float64(z) + 0.4*(rng.Float64()-0.5),
			},
		}
	}

	grid := source.NewStatic(map[int][]types.Batch{
		xctest.Hydrogen: source.NewCubeGrid(3, 6, 2),
		Carbon:          source.NewCubeGrid(5, 10, 3),
		xctest.Oxygen:   source.NewCubeGrid(5, 12, 3),
	})

	return xctest.System{Molecule: mol, Grid: grid, Basis: xctest.BasisFor(mol)}
}

package testing

import (
	"github.com/arloliu/xcbalance/source"
	"github.com/arloliu/xcbalance/types"
)

// System bundles a molecule with the grid and basis needed to balance it.
type System struct {
	Molecule types.Molecule
	Grid     *source.Static
	Basis    types.BasisSet
}

// Element atomic numbers used by the reference systems.
const (
	Hydrogen = 1
	Oxygen   = 8
)

// Water returns a water-like molecule (coordinates in bohr) with cube grids
// and a small cutoff basis.
//
// The oxygen grid has 27 batches and the hydrogen grids 8 batches each.
// Oxygen batches far from all nuclei fall outside every shell cutoff, so the
// system exercises screening as well as assignment and merging.
func Water() System {
	mol := types.Molecule{
		{AtomicNumber: Oxygen, Center: types.Point{0, 0, 0}},
		{AtomicNumber: Hydrogen, Center: types.Point{1.43, 1.11, 0}},
		{AtomicNumber: Hydrogen, Center: types.Point{-1.43, 1.11, 0}},
	}

	grid := source.NewStatic(map[int][]types.Batch{
		Oxygen:   source.NewCubeGrid(6, 12, 3),
		Hydrogen: source.NewCubeGrid(3, 8, 2),
	})

	return System{Molecule: mol, Grid: grid, Basis: BasisFor(mol)}
}

// BasisFor builds a small basis centered on the atoms of mol.
//
// Every atom carries an s shell; heavier atoms add a wider s and a p shell.
func BasisFor(mol types.Molecule) types.BasisSet {
	var basis types.BasisSet
	for _, atom := range mol {
		basis = append(basis, types.Shell{Center: atom.Center, NumFunctions: 1, CutoffRadius: 3})
		if atom.AtomicNumber > Hydrogen {
			basis = append(basis,
				types.Shell{Center: atom.Center, NumFunctions: 1, CutoffRadius: 3.3},
				types.Shell{Center: atom.Center, NumFunctions: 3, CutoffRadius: 3.2},
			)
		}
	}

	return basis
}

// Package source provides built-in molecular grid implementations.
//
// Grid sources supply the batches of each element's atomic grid.
// The package includes:
//
//   - Static: Fixed per-element batches, shifted onto each atom
//   - NewCubeGrid: Uniform cube grid split into sub-boxes
//
// Custom sources can be implemented by satisfying the types.MolecularGrid interface.
package source

package types

// Batch is one spatial sub-region of an atomic grid.
type Batch struct {
	// Lower and Upper are the corners of the batch bounding box.
	Lower Point
	Upper Point

	// Points and Weights are the quadrature points of the region, same length.
	Points  []Point
	Weights []float64
}

// GridBatcher enumerates the batches of one atomic grid.
//
// Recenter is called once per atom before any Batch call. After Recenter,
// Batch must be safe for concurrent use by multiple goroutines.
type GridBatcher interface {
	// Recenter moves the grid so that it is centered on the given point.
	Recenter(center Point)

	// NumBatches returns the number of batches of the grid.
	NumBatches() int

	// Batch generates batch i, 0 <= i < NumBatches().
	Batch(i int) Batch
}

// MolecularGrid resolves the atomic grid used for each element.
type MolecularGrid interface {
	// Batcher returns a batcher for atoms with the given atomic number.
	//
	// Returns:
	//   - GridBatcher: A batcher owned by the caller for the duration of one atom
	//   - error: ErrGridNotFound (wrapped) when no grid exists for the element
	Batcher(atomicNumber int) (GridBatcher, error)
}

// Shell is a group of basis functions sharing a center and an extent.
type Shell struct {
	// Center is the position the shell is centered on.
	Center Point `json:"center" yaml:"center"`

	// NumFunctions is the number of basis functions in the shell.
	NumFunctions int `json:"numFunctions" yaml:"numFunctions"`

	// CutoffRadius is the distance beyond which the shell is negligible.
	CutoffRadius float64 `json:"cutoffRadius" yaml:"cutoffRadius"`
}

// Basis is an ordered set of shells.
type Basis interface {
	// NumShells returns the number of shells.
	NumShells() int

	// NumFunctions returns the total number of basis functions.
	NumFunctions() int

	// Shell returns shell i, 0 <= i < NumShells().
	Shell(i int) Shell
}

// BasisSet is a Basis backed by a slice of shells.
type BasisSet []Shell

var _ Basis = BasisSet(nil)

// NumShells returns the number of shells.
func (b BasisSet) NumShells() int { return len(b) }

// Shell returns shell i.
func (b BasisSet) Shell(i int) Shell { return b[i] }

// NumFunctions returns the total number of basis functions.
func (b BasisSet) NumFunctions() int {
	n := 0
	for _, sh := range b {
		n += sh.NumFunctions
	}

	return n
}

// Screener selects the shells of a basis that contribute within a box.
//
// Implementations must be deterministic and safe for concurrent use.
type Screener interface {
	// Screen returns the surviving shells (ascending) and their function count.
	Screen(basis Basis, lower, upper Point) Screening
}

// Communicator reports the identity of the local rank within the job.
//
// The balancer performs no message passing; every rank replays the same
// deterministic assignment and keeps its own share.
type Communicator interface {
	// Rank returns the local rank index, 0 <= Rank() < Size().
	Rank() int

	// Size returns the number of ranks.
	Size() int
}

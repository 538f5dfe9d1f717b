package types

import "slices"

// Screening is the result of screening a basis against a spatial box.
type Screening struct {
	// ShellList holds the indices of the surviving shells, in basis order.
	ShellList []int32 `json:"shellList"`

	// NBE is the number of basis functions carried by the surviving shells.
	NBE int `json:"nbe"`
}

// Clone returns a deep copy of the screening.
func (s Screening) Clone() Screening {
	return Screening{ShellList: slices.Clone(s.ShellList), NBE: s.NBE}
}

// Task is the unit of integration work assigned to a rank.
//
// A task covers the quadrature points of one batch (or, after merging, of several
// equivalent batches) of one parent atom, together with the basis screening for
// that region. Invariant: len(Points) == len(Weights) == PointCount.
type Task struct {
	// ParentIndex is the index of the atom the points belong to.
	ParentIndex int `json:"parentIndex"`

	// PointCount is the number of points held, padding included.
	PointCount int `json:"pointCount"`

	// Points are the quadrature point coordinates.
	Points []Point `json:"points"`

	// Weights are the quadrature weights. Padding weights are exactly zero.
	Weights []float64 `json:"weights"`

	// Primary is the screening against the primary basis. Never empty for a retained task.
	Primary Screening `json:"primary"`

	// Secondary is the screening against the secondary basis, nil unless one is configured.
	Secondary *Screening `json:"secondary,omitempty"`

	// DistNearest is the nearest-neighbor distance of the parent atom.
	DistNearest float64 `json:"distNearest"`
}

// CostFunc maps a task to its balancing cost.
//
// Implementations must be pure: the same task, derivative order and atom count
// always produce the same cost on every rank.
type CostFunc func(task *Task, derivOrder, atomCount int) int64

// Cost returns the default balancing cost heuristic of the task.
//
// The estimate adds basis evaluation over all points (one value plus three
// gradient components per derivative order), the nbe*nbe contraction, and the
// per-point partition weight work that scales with the atom count.
//
// Parameters:
//   - derivOrder: Highest derivative order of the basis evaluation
//   - atomCount: Number of atoms in the molecule
//
// Returns:
//   - int64: Non-negative cost estimate
func (t *Task) Cost(derivOrder, atomCount int) int64 {
	npts := int64(t.PointCount)
	nbe := int64(t.Primary.NBE)

	return npts*nbe*int64(1+3*derivOrder) + nbe*nbe + npts*int64(atomCount)
}

// DefaultCost is the CostFunc form of Task.Cost.
func DefaultCost(task *Task, derivOrder, atomCount int) int64 {
	return task.Cost(derivOrder, atomCount)
}

// EquivalentTo reports whether two tasks share the parent atom and the primary shell list.
func (t *Task) EquivalentTo(other *Task) bool {
	return t.ParentIndex == other.ParentIndex && slices.Equal(t.Primary.ShellList, other.Primary.ShellList)
}

// Compare orders tasks by parent index, then by primary shell list element-wise.
//
// Ordering rules:
//   - Lower ParentIndex sorts first
//   - Shell lists compare element-wise; a strict prefix sorts first
//
// Returns:
//   - int: -1 if t < other, 0 if equivalent, +1 if t > other
func (t *Task) Compare(other *Task) int {
	if t.ParentIndex != other.ParentIndex {
		if t.ParentIndex < other.ParentIndex {
			return -1
		}

		return 1
	}

	return slices.Compare(t.Primary.ShellList, other.Primary.ShellList)
}

// MergeWith appends the points and weights of other to t.
// Screening metadata of t is left untouched.
func (t *Task) MergeWith(other *Task) {
	t.Points = append(t.Points, other.Points...)
	t.Weights = append(t.Weights, other.Weights...)
	t.PointCount = len(t.Points)
}

// WeightSum returns the sum of the quadrature weights.
func (t *Task) WeightSum() float64 {
	sum := 0.0
	for _, w := range t.Weights {
		sum += w
	}

	return sum
}

// Candidate is a task that has not yet been assigned to a rank.
type Candidate struct {
	// BatchIndex is the global position of the source batch: the batch index within
	// its atom plus the batch counts of all preceding atoms.
	BatchIndex int

	// Task is the assembled task.
	Task Task
}

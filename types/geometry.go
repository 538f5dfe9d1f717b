package types

import "math"

// Point is a Cartesian coordinate triple.
type Point [3]float64

// Atom is a nucleus of a molecule.
type Atom struct {
	// AtomicNumber selects the atomic grid used for this atom.
	AtomicNumber int `json:"atomicNumber" yaml:"atomicNumber"`

	// Center is the nuclear position.
	Center Point `json:"center" yaml:"center"`
}

// Molecule is an ordered list of atoms. Atom indices are positions in this list.
type Molecule []Atom

// NearestNeighborDistances returns, for each atom, the distance to the closest other atom.
//
// A molecule with a single atom reports +Inf for that atom.
//
// Returns:
//   - []float64: One distance per atom, in atom order
func (m Molecule) NearestNeighborDistances() []float64 {
	dist := make([]float64, len(m))
	for i := range m {
		nearest := math.Inf(1)
		for j := range m {
			if i == j {
				continue
			}
			if d := Distance(m[i].Center, m[j].Center); d < nearest {
				nearest = d
			}
		}
		dist[i] = nearest
	}

	return dist
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	dz := a[2] - b[2]

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// BoxDistance returns the distance from p to the closest point of the axis-aligned box [lower, upper].
// Points inside the box are at distance zero.
func BoxDistance(p, lower, upper Point) float64 {
	sum := 0.0
	for k := range 3 {
		var d float64
		switch {
		case p[k] < lower[k]:
			d = lower[k] - p[k]
		case p[k] > upper[k]:
			d = p[k] - upper[k]
		}
		sum += d * d
	}

	return math.Sqrt(sum)
}

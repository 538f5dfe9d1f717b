package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNearestNeighborDistances(t *testing.T) {
	t.Run("single atom is infinitely far", func(t *testing.T) {
		mol := Molecule{{AtomicNumber: 1}}
		require.True(t, math.IsInf(mol.NearestNeighborDistances()[0], 1))
	})

	t.Run("picks closest neighbor", func(t *testing.T) {
		mol := Molecule{
			{AtomicNumber: 8, Center: Point{0, 0, 0}},
			{AtomicNumber: 1, Center: Point{1, 0, 0}},
			{AtomicNumber: 1, Center: Point{0, 3, 0}},
		}
		dist := mol.NearestNeighborDistances()
		require.InDelta(t, 1.0, dist[0], 1e-12)
		require.InDelta(t, 1.0, dist[1], 1e-12)
		require.InDelta(t, 3.0, dist[2], 1e-12)
	})
}

func TestBoxDistance(t *testing.T) {
	lo := Point{0, 0, 0}
	up := Point{1, 1, 1}

	require.Zero(t, BoxDistance(Point{0.5, 0.5, 0.5}, lo, up))
	require.InDelta(t, 2.0, BoxDistance(Point{3, 0.5, 0.5}, lo, up), 1e-12)
	require.InDelta(t, math.Sqrt(2), BoxDistance(Point{-1, -1, 0.5}, lo, up), 1e-12)
}

func TestBasisSet(t *testing.T) {
	b := BasisSet{{NumFunctions: 1}, {NumFunctions: 3}, {NumFunctions: 5}}
	require.Equal(t, 3, b.NumShells())
	require.Equal(t, 9, b.NumFunctions())
	require.Equal(t, 3, b.Shell(1).NumFunctions)
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateUnbuilt, "Unbuilt"},
		{StateBuilt, "Built"},
		{StateFailed, "Failed"},
		{State(999), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.state.String())
		})
	}
}

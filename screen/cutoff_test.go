package screen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/xcbalance/types"
)

func TestCutoff_Screen(t *testing.T) {
	basis := types.BasisSet{
		{Center: types.Point{0, 0, 0}, NumFunctions: 1, CutoffRadius: 2},
		{Center: types.Point{5, 0, 0}, NumFunctions: 3, CutoffRadius: 1},
		{Center: types.Point{0, 0, 0}, NumFunctions: 5, CutoffRadius: 0},
		{Center: types.Point{3, 3, 3}, NumFunctions: 6, CutoffRadius: 10},
	}

	t.Run("keeps shells within cutoff of the box", func(t *testing.T) {
		s := NewCutoff().Screen(basis, types.Point{1, -1, -1}, types.Point{2, 1, 1})

		require.Equal(t, []int32{0, 3}, s.ShellList)
		require.Equal(t, 7, s.NBE)
	})

	t.Run("shell inside the box survives", func(t *testing.T) {
		s := NewCutoff().Screen(basis, types.Point{4, -1, -1}, types.Point{6, 1, 1})

		require.Contains(t, s.ShellList, int32(1))
	})

	t.Run("far box screens everything out", func(t *testing.T) {
		s := NewCutoff().Screen(basis, types.Point{100, 100, 100}, types.Point{101, 101, 101})

		require.Empty(t, s.ShellList)
		require.Zero(t, s.NBE)
	})

	t.Run("radius scale widens the cutoff", func(t *testing.T) {
		lower, upper := types.Point{3.5, -1, -1}, types.Point{3.8, 1, 1}

		narrow := NewCutoff().Screen(basis, lower, upper)
		wide := NewCutoff(WithRadiusScale(2)).Screen(basis, lower, upper)

		require.NotContains(t, narrow.ShellList, int32(1))
		require.Contains(t, wide.ShellList, int32(1))
	})

	t.Run("non-positive scale is ignored", func(t *testing.T) {
		c := NewCutoff(WithRadiusScale(-1))
		require.InDelta(t, 1.0, c.scale, 1e-12)
	})
}

package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLedger(t *testing.T) {
	t.Run("min rank breaks ties by lowest index", func(t *testing.T) {
		l := NewLedger(3)
		require.Equal(t, 0, l.MinRank())

		l.Charge(0, 5)
		require.Equal(t, 1, l.MinRank())

		l.Charge(1, 5)
		require.Equal(t, 2, l.MinRank())

		l.Charge(2, 5)
		require.Equal(t, 0, l.MinRank())
	})

	t.Run("empty ledger has no min rank", func(t *testing.T) {
		require.Equal(t, -1, NewLedger(0).MinRank())
		require.Equal(t, int64(0), NewLedger(0).Spread())
	})

	t.Run("spread and total", func(t *testing.T) {
		l := Ledger{12, 40, 16}
		require.Equal(t, int64(28), l.Spread())
		require.Equal(t, int64(68), l.Total())
	})

	t.Run("clone is independent", func(t *testing.T) {
		l := Ledger{1, 2}
		c := l.Clone()
		c.Charge(0, 10)
		require.Equal(t, int64(1), l[0])
	})
}

package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	t.Run("errors.Is works through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("strategy %q: %w", "bogus", ErrUnknownStrategy)
		require.ErrorIs(t, wrapped, ErrUnknownStrategy)
		require.NotErrorIs(t, wrapped, ErrInvalidConfig)
	})

	t.Run("all errors are distinct", func(t *testing.T) {
		allErrors := []error{
			ErrInvalidConfig,
			ErrUnknownStrategy,
			ErrInvalidCommunicator,
			ErrEmptyMolecule,
			ErrGridNotFound,
			ErrBasisMismatch,
			ErrMissingCollaborator,
			ErrNoRanks,
			ErrMergeInvariant,
			ErrWeightsNotModified,
			ErrNotBuilt,
		}

		for i, a := range allErrors {
			for j, b := range allErrors {
				if i == j {
					continue
				}
				require.False(t, errors.Is(a, b), "%v should not match %v", a, b)
			}
		}
	})
}

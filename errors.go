package xcbalance

import "github.com/arloliu/xcbalance/types"

// Sentinel errors returned by the LoadBalancer.
//
// These are re-exported from the types package so callers can match them with
// errors.Is without importing types.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrUnknownStrategy is returned when the configured strategy name is not registered.
	ErrUnknownStrategy = types.ErrUnknownStrategy

	// ErrInvalidCommunicator is returned when the communicator is nil or reports an invalid rank.
	ErrInvalidCommunicator = types.ErrInvalidCommunicator

	// ErrEmptyMolecule is returned when the molecule has no atoms.
	ErrEmptyMolecule = types.ErrEmptyMolecule

	// ErrGridNotFound is returned when the molecular grid has no grid for an element.
	ErrGridNotFound = types.ErrGridNotFound

	// ErrBasisMismatch is returned when screening results do not fit the basis.
	ErrBasisMismatch = types.ErrBasisMismatch

	// ErrMissingCollaborator is returned when a required collaborator is nil.
	ErrMissingCollaborator = types.ErrMissingCollaborator

	// ErrMergeInvariant is returned when task merging detects an internal inconsistency.
	ErrMergeInvariant = types.ErrMergeInvariant

	// ErrWeightsNotModified is returned by RequireModifiedWeights before MarkWeightsModified.
	ErrWeightsNotModified = types.ErrWeightsNotModified

	// ErrNotBuilt is returned by Summary before the first build.
	ErrNotBuilt = types.ErrNotBuilt
)

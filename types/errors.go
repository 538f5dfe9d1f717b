package types

import "errors"

// Sentinel errors for the xcbalance library.
//
// These errors provide type-safe error checking using errors.Is().
// Components wrap them with context using fmt.Errorf("%s: %w", msg, err).

// Configuration errors - fatal, reported at construction or at build time.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownStrategy is returned when a balancing strategy name is not registered.
	ErrUnknownStrategy = errors.New("load balancer strategy not recognized")

	// ErrInvalidCommunicator is returned when rank or size are out of range.
	ErrInvalidCommunicator = errors.New("invalid communicator")

	// ErrEmptyMolecule is returned when the molecule has no atoms.
	ErrEmptyMolecule = errors.New("molecule has no atoms")

	// ErrGridNotFound is returned when no atomic grid exists for an element.
	ErrGridNotFound = errors.New("no atomic grid for element")

	// ErrBasisMismatch is returned when screening results do not fit the basis.
	ErrBasisMismatch = errors.New("screening does not match basis dimensions")

	// ErrMissingCollaborator is returned when a required collaborator is nil.
	ErrMissingCollaborator = errors.New("required collaborator is nil")
)

// Distribution errors.
var (
	// ErrNoRanks is returned when a strategy is asked to assign into an empty ledger.
	ErrNoRanks = errors.New("no ranks available for assignment")
)

// Internal consistency errors - indicate an implementation defect.
var (
	// ErrMergeInvariant is returned when the unique-task cursor runs past its end during merge.
	ErrMergeInvariant = errors.New("task merge invariant violated: unique cursor exhausted")
)

// State errors.
var (
	// ErrWeightsNotModified is returned when integration requires partitioned weights that are not stored yet.
	ErrWeightsNotModified = errors.New("weights have not been modified")

	// ErrNotBuilt is returned when build results are requested before a build has run.
	ErrNotBuilt = errors.New("task list has not been built")
)

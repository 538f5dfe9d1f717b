package report

import "errors"

var (
	// ErrMissingRank is returned when a rank has not published its summary.
	ErrMissingRank = errors.New("rank summary missing")

	// ErrDuplicateRank is returned when two summaries claim the same rank.
	ErrDuplicateRank = errors.New("duplicate rank summary")

	// ErrDisagreement is returned when ranks computed different assignments.
	ErrDisagreement = errors.New("ranks disagree on assignment")
)

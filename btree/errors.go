package btree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("btree: invalid configuration")
	// ErrInvariantViolated signals that a tree failed a structural check.
	ErrInvariantViolated = errors.New("btree: invariant violated")
)

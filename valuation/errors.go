// SPDX-License-Identifier: MIT
// Package valuation: sentinel error set.
// Every message is prefixed with "valuation: ..." so callers can match with
// errors.Is after any amount of fmt.Errorf("%w") wrapping.

package valuation

import "errors"

var (
	// ErrRagged indicates that rows of a valuation matrix have different lengths.
	ErrRagged = errors.New("valuation: rows have inconsistent lengths")

	// ErrNonFinite indicates a NaN or ±Inf entry.
	ErrNonFinite = errors.New("valuation: NaN or Inf encountered")

	// ErrOutOfRange indicates a player (row) or object (column) index outside valid bounds.
	ErrOutOfRange = errors.New("valuation: index out of range")

	// ErrRetired indicates an attempt to retire an object that is already retired.
	ErrRetired = errors.New("valuation: object already retired")
)

// SPDX-License-Identifier: MIT
// Package wrr: sentinel errors and typed round errors.
//
// Callers match with errors.Is against the sentinels; typed errors carry the
// round and player where the run stopped and unwrap to their sentinel.

package wrr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned before any round runs when rights, valuations
	// or y are structurally unusable. The wrapped message names the culprit.
	ErrInvalidInput = errors.New("wrr: invalid input")

	// ErrDivisionByZero is matched by *DivisionByZeroError: a player's
	// denominator taken+y was exactly zero under the DivisionError policy.
	ErrDivisionByZero = errors.New("wrr: division by zero in portion")

	// ErrNoEligiblePlayer indicates that no player's portion exceeded the
	// configured floor, so nobody could choose.
	ErrNoEligiblePlayer = errors.New("wrr: no eligible player")

	// ErrNoObject indicates the chosen player had no remaining object to take.
	// It can only surface if internal bookkeeping is broken.
	ErrNoObject = errors.New("wrr: no remaining object for chosen player")
)

// DivisionByZeroError reports the round and player whose portion
// denominator (taken + y) evaluated to zero.
type DivisionByZeroError struct {
	Round  int
	Player int
	Taken  int
	Y      float64
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("wrr: round %d: player %d: taken(%d)+y(%g) == 0: division by zero in portion",
		e.Round, e.Player, e.Taken, e.Y)
}

// Is makes errors.Is(err, ErrDivisionByZero) succeed.
func (e *DivisionByZeroError) Is(target error) bool {
	return target == ErrDivisionByZero
}

// RoundError wraps a failure that aborted the run at Round.
type RoundError struct {
	Round int
	Err   error
}

func (e *RoundError) Error() string {
	return fmt.Sprintf("round %d: %v", e.Round, e.Err)
}

func (e *RoundError) Unwrap() error { return e.Err }

// invalidf wraps ErrInvalidInput (and optionally a cause) with context.
func invalidf(cause error, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	if cause != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidInput, msg, cause)
	}

	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}

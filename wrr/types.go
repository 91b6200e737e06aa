// SPDX-License-Identifier: MIT
// Package wrr defines options, policies, observer hooks and the allocation
// record for the Weighted Round Robin procedure.
package wrr

import (
	"fmt"
	"math"
)

// Floor is the initial value of the best-portion tracker. A player is chosen
// only if its portion is strictly greater than the floor (and than every
// earlier player's portion).
type Floor int

const (
	// ZeroFloor starts the tracker at 0: only strictly positive portions can win.
	ZeroFloor Floor = iota

	// NegInfFloor starts the tracker at -Inf: any non-NaN portion can win,
	// negative ones included.
	NegInfFloor
)

// value returns the numeric floor.
func (f Floor) value() float64 {
	if f == NegInfFloor {
		return math.Inf(-1)
	}

	return 0
}

func (f Floor) String() string {
	switch f {
	case ZeroFloor:
		return "zero"
	case NegInfFloor:
		return "neg-inf"
	default:
		return fmt.Sprintf("Floor(%d)", int(f))
	}
}

// ParseFloor maps "zero" and "neg-inf" to their Floor.
func ParseFloor(s string) (Floor, error) {
	switch s {
	case "zero", "":
		return ZeroFloor, nil
	case "neg-inf":
		return NegInfFloor, nil
	default:
		return ZeroFloor, fmt.Errorf("wrr: unknown floor %q (want zero or neg-inf)", s)
	}
}

// DivisionPolicy decides what happens when taken+y == 0 for an evaluated player.
type DivisionPolicy int

const (
	// DivisionError aborts the run with a *DivisionByZeroError.
	DivisionError DivisionPolicy = iota

	// DivisionSaturate treats the portion as +Inf. Rights are positive, so the
	// limit is always +Inf.
	DivisionSaturate
)

// Observer receives trace events from a run. Calls happen synchronously on
// the caller's goroutine, in round order. Observers must not retain Record
// slices across calls.
type Observer interface {
	// Portion is called for every player evaluated in a round.
	Portion(round, player int, portion float64)

	// Chose is called once per round with the selected player and its portion.
	Chose(round, player int, portion float64)

	// Pick is called after the round's state update.
	Pick(rec Record)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) Portion(int, int, float64) {}
func (NopObserver) Chose(int, int, float64)   {}
func (NopObserver) Pick(Record)               {}

// Options holds the knobs of a run. Build it with DefaultOptions and Option
// functions; the zero value is not the default (Observer is nil).
type Options struct {
	// Floor is the best-portion starting threshold.
	Floor Floor

	// Division decides how taken+y == 0 is handled.
	Division DivisionPolicy

	// StrictY rejects y <= 0 before any round runs.
	StrictY bool

	// InPlace zeroes retired columns directly in the caller's valuation rows.
	InPlace bool

	// Observer receives trace events; never nil after DefaultOptions.
	Observer Observer
}

// Option configures Allocate via functional arguments.
type Option func(*Options)

// DefaultOptions returns the reference configuration:
//   - ZeroFloor
//   - DivisionError
//   - no up-front y check beyond NaN
//   - copy-on-entry (caller data untouched)
//   - NopObserver
func DefaultOptions() Options {
	return Options{
		Floor:    ZeroFloor,
		Division: DivisionError,
		StrictY:  false,
		InPlace:  false,
		Observer: NopObserver{},
	}
}

// WithFloor selects the best-portion starting threshold.
func WithFloor(f Floor) Option {
	return func(o *Options) {
		o.Floor = f
	}
}

// WithSaturation maps zero denominators to an infinite portion instead of failing.
func WithSaturation() Option {
	return func(o *Options) {
		o.Division = DivisionSaturate
	}
}

// WithStrictY requires y > 0, which guarantees every denominator is positive.
func WithStrictY() Option {
	return func(o *Options) {
		o.StrictY = true
	}
}

// WithInPlace makes the run zero retired columns in the caller's rows.
// The caller must not use those rows concurrently while Allocate runs.
func WithInPlace() Option {
	return func(o *Options) {
		o.InPlace = true
	}
}

// WithObserver installs obs. A nil obs is ignored.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// Record is one allocation event: in Round, Player took Object which they
// valued at Value at the moment of choice.
type Record struct {
	Round  int     `json:"round" yaml:"round"`
	Player int     `json:"player" yaml:"player"`
	Object int     `json:"object" yaml:"object"`
	Value  float64 `json:"value" yaml:"value"`
}

// String renders the record the way the reference procedure prints it.
func (r Record) String() string {
	return fmt.Sprintf("Player %d takes item %d with value %g", r.Player, r.Object, r.Value)
}

// SPDX-License-Identifier: MIT
package wrr

import (
	"math"

	"github.com/katalvlaran/fairdiv/valuation"
)

// Allocate — Weighted Round Robin
//
// Description:
//
//	Hands out every object, one per round, to the player with the highest
//	portion right/(taken+y); that player takes their most valued remaining
//	object. The returned records are in allocation order.
//
// Algorithm Outline:
//  1. Validate rights, valuations and y (ErrInvalidInput).
//  2. Build the working matrix: a deep copy, or the caller's rows with WithInPlace.
//  3. For round = 0..objects-1:
//     a. For p = 0..players-1: portion(p) = rights[p] / (taken[p] + y).
//     The first p with portion strictly above the running best wins;
//     the running best starts at the Floor (0 by default).
//     b. The winner scans its remaining objects in index order and takes
//     the first strictly largest value.
//     c. taken[winner]++, append the record, retire the object (its column
//     becomes 0 for every player).
//  4. Return the records.
//
// Ties:
//   - equal portions → lowest player index.
//   - equal values   → lowest object index.
//
// Errors:
//   - ErrInvalidInput        — before round 0; records are nil.
//   - *DivisionByZeroError   — taken+y == 0 under DivisionError.
//   - ErrNoEligiblePlayer    — wrapped in *RoundError; no portion above Floor.
//
// On a round error the records of the completed rounds are returned with it.
//
// Complexity:
//
//	Time   = O(M·(N+M)) for N players and M objects
//	Memory = O(N·M) (copy) or O(N+M) (WithInPlace)
func Allocate(rights []float64, valuations [][]float64, y float64, opts ...Option) ([]Record, error) {
	// 1) Options
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate rights and y
	if err := validate(rights, valuations, y, cfg); err != nil {
		return nil, err
	}

	// 3) Working matrix (validates shape and finiteness)
	var (
		m   *valuation.Matrix
		err error
	)
	if cfg.InPlace {
		m, err = valuation.Wrap(valuations)
	} else {
		m, err = valuation.FromRows(valuations)
	}
	if err != nil {
		return nil, invalidf(err, "valuations")
	}

	a := &allocator{
		rights: rights,
		y:      y,
		cfg:    cfg,
		m:      m,
		taken:  make([]int, len(rights)),
	}

	return a.run()
}

// allocator is the per-call state machine.
type allocator struct {
	rights []float64
	y      float64
	cfg    Options
	m      *valuation.Matrix
	taken  []int
}

func (a *allocator) run() ([]Record, error) {
	records := make([]Record, 0, a.m.Objects())

	var round int
	for round = 0; a.m.Remaining() > 0; round++ {
		player, portion, err := a.choosePlayer(round)
		if err != nil {
			return records, err
		}
		a.cfg.Observer.Chose(round, player, portion)

		object, value, ok := a.m.Best(player)
		if !ok {
			return records, &RoundError{Round: round, Err: ErrNoObject}
		}

		a.taken[player]++
		if err = a.m.Retire(object); err != nil {
			return records, &RoundError{Round: round, Err: err}
		}

		rec := Record{Round: round, Player: player, Object: object, Value: value}
		records = append(records, rec)
		a.cfg.Observer.Pick(rec)
	}

	return records, nil
}

// choosePlayer returns the first player whose portion is strictly greater
// than the floor and every earlier portion.
func (a *allocator) choosePlayer(round int) (int, float64, error) {
	best := a.cfg.Floor.value()
	chosen := -1

	var (
		p       int
		portion float64
		err     error
	)
	for p = range a.rights {
		if portion, err = a.portion(round, p); err != nil {
			return -1, 0, err
		}
		a.cfg.Observer.Portion(round, p, portion)

		if portion > best {
			best = portion
			chosen = p
		}
	}
	if chosen < 0 {
		return -1, 0, &RoundError{Round: round, Err: ErrNoEligiblePlayer}
	}

	return chosen, best, nil
}

// portion computes rights[p]/(taken[p]+y) under the configured division policy.
func (a *allocator) portion(round, p int) (float64, error) {
	den := float64(a.taken[p]) + a.y
	if den == 0 {
		if a.cfg.Division == DivisionSaturate {
			return math.Inf(1), nil
		}

		return 0, &DivisionByZeroError{Round: round, Player: p, Taken: a.taken[p], Y: a.y}
	}

	return a.rights[p] / den, nil
}

// validate enforces the preconditions on rights and y checked before round 0.
// Matrix shape and finiteness are checked when the working matrix is built.
func validate(rights []float64, valuations [][]float64, y float64, cfg Options) error {
	if len(rights) == 0 {
		return invalidf(nil, "rights is empty")
	}

	var (
		p int
		r float64
	)
	for p, r = range rights {
		if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
			return invalidf(nil, "right of player %d is %v, want a finite value > 0", p, r)
		}
	}

	if len(valuations) != len(rights) {
		return invalidf(nil, "%d valuation rows for %d players", len(valuations), len(rights))
	}

	if math.IsNaN(y) || math.IsInf(y, 0) {
		return invalidf(nil, "y is %v, want a finite value", y)
	}
	if cfg.StrictY && y <= 0 {
		return invalidf(nil, "y is %v, want y > 0", y)
	}

	return nil
}

// SPDX-License-Identifier: MIT
package observe

import "github.com/katalvlaran/fairdiv/wrr"

// Tee forwards every event to each observer in order. Nil entries are skipped.
type Tee []wrr.Observer

var _ wrr.Observer = Tee(nil)

func (t Tee) Portion(round, player int, portion float64) {
	for _, o := range t {
		if o != nil {
			o.Portion(round, player, portion)
		}
	}
}

func (t Tee) Chose(round, player int, portion float64) {
	for _, o := range t {
		if o != nil {
			o.Chose(round, player, portion)
		}
	}
}

func (t Tee) Pick(rec wrr.Record) {
	for _, o := range t {
		if o != nil {
			o.Pick(rec)
		}
	}
}

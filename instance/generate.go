// SPDX-License-Identifier: MIT
package instance

import (
	"fmt"
	"math/rand"

	"github.com/pkg/errors"
)

// defaultSeed is used when GenConfig.Seed == 0, so the zero config is reproducible.
const defaultSeed int64 = 1

// ErrBadGenConfig indicates a GenConfig field outside its documented range.
var ErrBadGenConfig = errors.New("instance: invalid generator config")

// GenConfig controls Generate.
//
//   - Players  — number of players, ≥ 1.
//   - Objects  — number of objects, ≥ 0.
//   - MaxRight — rights are integers drawn uniformly from [1, MaxRight], ≥ 1.
//   - MaxValue — valuations are integers drawn uniformly from [0, MaxValue], ≥ 0.
//   - Y        — copied into the instance verbatim.
//   - Seed     — RNG seed; 0 selects a fixed default seed.
type GenConfig struct {
	Players  int
	Objects  int
	MaxRight int
	MaxValue int
	Y        float64
	Seed     int64
}

// DefaultGenConfig returns a small 3×5 configuration with y = 0.5.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Players:  3,
		Objects:  5,
		MaxRight: 4,
		MaxValue: 100,
		Y:        0.5,
		Seed:     0,
	}
}

// Validate checks every field's range.
func (c GenConfig) Validate() error {
	switch {
	case c.Players < 1:
		return fmt.Errorf("%w: Players=%d, want ≥ 1", ErrBadGenConfig, c.Players)
	case c.Objects < 0:
		return fmt.Errorf("%w: Objects=%d, want ≥ 0", ErrBadGenConfig, c.Objects)
	case c.MaxRight < 1:
		return fmt.Errorf("%w: MaxRight=%d, want ≥ 1", ErrBadGenConfig, c.MaxRight)
	case c.MaxValue < 0:
		return fmt.Errorf("%w: MaxValue=%d, want ≥ 0", ErrBadGenConfig, c.MaxValue)
	}

	return nil
}

// rngFromSeed returns a deterministic *rand.Rand (seed==0 ⇒ defaultSeed).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Generate draws a random instance. The same config always yields the same
// instance. Rights are drawn first, then valuations row by row.
func Generate(cfg GenConfig) (*Instance, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var rng = rngFromSeed(cfg.Seed)

	var in = &Instance{
		Rights:     make([]float64, cfg.Players),
		Y:          cfg.Y,
		Valuations: make([][]float64, cfg.Players),
	}
	var p, o int
	for p = range in.Rights {
		in.Rights[p] = float64(1 + rng.Intn(cfg.MaxRight))
	}
	for p = range in.Valuations {
		in.Valuations[p] = make([]float64, cfg.Objects)
		for o = range in.Valuations[p] {
			in.Valuations[p][o] = float64(rng.Intn(cfg.MaxValue + 1))
		}
	}

	return in, nil
}

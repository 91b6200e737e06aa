// SPDX-License-Identifier: MIT
// Package instance models a Weighted Round Robin problem instance (rights,
// y, valuations) as a YAML document, and generates random instances from a
// seed for demos and property checks.
//
// Document form (JSON is accepted as well, since it parses as YAML):
//
//	rights: [1, 2, 4]
//	y: 0.5
//	valuations:
//	  - [11, 11, 22, 33, 44]
//	  - [11, 22, 44, 55, 66]
//	  - [11, 33, 22, 11, 66]
package instance

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// ErrEmptyDocument is returned by Decode when the reader holds no document.
var ErrEmptyDocument = errors.New("instance: empty document")

// Instance is one allocation problem.
type Instance struct {
	// Rights holds one entitlement per player.
	Rights []float64 `yaml:"rights" json:"rights"`
	// Y is the portion denominator shift.
	Y float64 `yaml:"y" json:"y"`
	// Valuations is players × objects.
	Valuations [][]float64 `yaml:"valuations" json:"valuations"`
}

// Players returns len(Rights).
func (in *Instance) Players() int { return len(in.Rights) }

// Objects returns the length of the first valuation row, or 0.
func (in *Instance) Objects() int {
	if len(in.Valuations) == 0 {
		return 0
	}

	return len(in.Valuations[0])
}

// Clone returns a deep copy.
func (in *Instance) Clone() *Instance {
	var out = &Instance{
		Rights:     make([]float64, len(in.Rights)),
		Y:          in.Y,
		Valuations: make([][]float64, len(in.Valuations)),
	}
	copy(out.Rights, in.Rights)
	for i := range in.Valuations {
		out.Valuations[i] = make([]float64, len(in.Valuations[i]))
		copy(out.Valuations[i], in.Valuations[i])
	}

	return out
}

// Decode reads a single instance document from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Instance, error) {
	var dec = yaml.NewDecoder(r)
	dec.SetStrict(true)

	var in Instance
	if err := dec.Decode(&in); err == io.EOF {
		return nil, ErrEmptyDocument
	} else if err != nil {
		return nil, errors.Wrap(err, "decoding instance")
	}

	return &in, nil
}

// Encode writes in to w as a YAML document.
func Encode(w io.Writer, in *Instance) error {
	var enc = yaml.NewEncoder(w)
	if err := enc.Encode(in); err != nil {
		return errors.Wrap(err, "encoding instance")
	}

	return errors.Wrap(enc.Close(), "flushing instance")
}

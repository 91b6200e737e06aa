// SPDX-License-Identifier: MIT
// Package valuation holds the player × object valuation matrix consumed by
// fair-division procedures.
//
// A Matrix is row-major: row p is player p's valuation of every object, and
// column o is object o across all players. Columns are Retired as objects are
// handed out: every entry of a retired column is set to zero and the column is
// remembered so scans can skip it.
//
// Two constructors decide ownership:
//   - FromRows deep-copies the caller's rows; the caller's data is never touched.
//   - Wrap validates the caller's rows and uses them directly, so Retire zeroes
//     the caller's entries (ownership moves to the Matrix for its lifetime).
package valuation

import (
	"fmt"
	"math"
	"strings"
)

// Matrix is a rectangular valuation matrix with retirement tracking.
type Matrix struct {
	rows    [][]float64 // rows[p][o]; len(rows[p]) == cols for every p
	cols    int         // number of objects
	retired []bool      // retired[o] == true once column o is retired
	left    int         // number of columns not yet retired
}

// matrixErrorf wraps an underlying error with method context.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// FromRows validates rows and returns a Matrix backed by a deep copy.
// Stage 1 (Validate): shape and finiteness via Validate.
// Stage 2 (Prepare): copy every row into fresh storage.
// Complexity: O(r*c) time and memory.
func FromRows(rows [][]float64) (*Matrix, error) {
	cols, err := Validate(rows)
	if err != nil {
		return nil, err
	}

	cp := make([][]float64, len(rows))
	var p int
	for p = range rows {
		cp[p] = make([]float64, cols)
		copy(cp[p], rows[p])
	}

	return newMatrix(cp, cols), nil
}

// Wrap validates rows and returns a Matrix that shares the caller's storage.
// Retire writes zeros straight into rows.
// Complexity: O(r*c) time for validation, O(c) memory.
func Wrap(rows [][]float64) (*Matrix, error) {
	cols, err := Validate(rows)
	if err != nil {
		return nil, err
	}

	return newMatrix(rows, cols), nil
}

func newMatrix(rows [][]float64, cols int) *Matrix {
	return &Matrix{
		rows:    rows,
		cols:    cols,
		retired: make([]bool, cols),
		left:    cols,
	}
}

// Validate checks that rows are rectangular and finite and returns the
// column count. A matrix with zero rows has zero columns.
// Complexity: O(r*c).
func Validate(rows [][]float64) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	cols := len(rows[0])

	var (
		p, o int
		v    float64
	)
	for p = range rows {
		if len(rows[p]) != cols {
			return 0, fmt.Errorf("row %d has %d objects, row 0 has %d: %w", p, len(rows[p]), cols, ErrRagged)
		}
		for o, v = range rows[p] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, fmt.Errorf("entry (%d,%d)=%v: %w", p, o, v, ErrNonFinite)
			}
		}
	}

	return cols, nil
}

// Players returns the number of rows.
func (m *Matrix) Players() int { return len(m.rows) }

// Objects returns the number of columns, retired ones included.
func (m *Matrix) Objects() int { return m.cols }

// Remaining returns the number of columns not yet retired.
func (m *Matrix) Remaining() int { return m.left }

// IsRetired reports whether column o is retired. Out-of-range columns report false.
func (m *Matrix) IsRetired(o int) bool {
	if o < 0 || o >= m.cols {
		return false
	}

	return m.retired[o]
}

// At returns player p's valuation of object o.
// Complexity: O(1).
func (m *Matrix) At(p, o int) (float64, error) {
	if p < 0 || p >= len(m.rows) || o < 0 || o >= m.cols {
		return 0, matrixErrorf("At", p, o, ErrOutOfRange)
	}

	return m.rows[p][o], nil
}

// Row returns player p's valuation row without copying. Callers must not
// modify it; use Retire to change the matrix.
func (m *Matrix) Row(p int) ([]float64, error) {
	if p < 0 || p >= len(m.rows) {
		return nil, matrixErrorf("Row", p, 0, ErrOutOfRange)
	}

	return m.rows[p], nil
}

// Best returns the first non-retired column holding the strictly largest
// value in row p. ok is false when row p has no remaining column.
// Ties resolve to the lowest column index.
// Complexity: O(c).
func (m *Matrix) Best(p int) (col int, value float64, ok bool) {
	if p < 0 || p >= len(m.rows) {
		return -1, 0, false
	}

	col, value = -1, math.Inf(-1)
	var (
		o int
		v float64
	)
	for o, v = range m.rows[p] {
		if m.retired[o] {
			continue
		}
		// Strict > keeps the first maximum.
		if v > value {
			col, value = o, v
		}
	}

	return col, value, col >= 0
}

// Retire marks column o as taken and zeroes it for every player.
// Complexity: O(r).
func (m *Matrix) Retire(o int) error {
	if o < 0 || o >= m.cols {
		return matrixErrorf("Retire", 0, o, ErrOutOfRange)
	}
	if m.retired[o] {
		return matrixErrorf("Retire", 0, o, ErrRetired)
	}

	var p int
	for p = range m.rows {
		m.rows[p][o] = 0
	}
	m.retired[o] = true
	m.left--

	return nil
}

// Clone returns a deep copy, retirement state included.
// Complexity: O(r*c).
func (m *Matrix) Clone() *Matrix {
	cp := make([][]float64, len(m.rows))
	var p int
	for p = range m.rows {
		cp[p] = make([]float64, m.cols)
		copy(cp[p], m.rows[p])
	}
	retired := make([]bool, m.cols)
	copy(retired, m.retired)

	return &Matrix{rows: cp, cols: m.cols, retired: retired, left: m.left}
}

// Rows returns a deep copy of the current entries.
func (m *Matrix) Rows() [][]float64 {
	return m.Clone().rows
}

// String implements fmt.Stringer for debugging. Retired entries print as "-".
func (m *Matrix) String() string {
	var sb strings.Builder
	var (
		p, o int
		v    float64
	)
	for p = range m.rows {
		sb.WriteString("[")
		for o, v = range m.rows[p] {
			if o > 0 {
				sb.WriteString(" ")
			}
			if m.retired[o] {
				sb.WriteString("-")
			} else {
				fmt.Fprintf(&sb, "%g", v)
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

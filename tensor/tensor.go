// Copyright 2026 The mlpractical Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/orestis-z/mlpractical/internal/tensor"
)

// Matrix is a dense, row-major matrix of float64 values.
type Matrix = tensor.Matrix

// Error is the comparable value matrix operations panic with on contract
// violations.
type Error = tensor.Error

var (
	// ErrShape is the panic value for mismatched dimensions.
	ErrShape = tensor.ErrShape

	// ErrIndex is the panic value for an out-of-range index.
	ErrIndex = tensor.ErrIndex
)

// New creates a rows x cols matrix backed by data. A nil data slice
// allocates a zeroed backing store; otherwise data must hold exactly
// rows*cols values.
func New(rows, cols int, data []float64) (*Matrix, error) {
	return tensor.New(rows, cols, data)
}

// MustNew is like New but panics on invalid input.
func MustNew(rows, cols int, data []float64) *Matrix {
	return tensor.MustNew(rows, cols, data)
}

// Zeros creates a rows x cols matrix of zeros.
func Zeros(rows, cols int) *Matrix {
	return tensor.Zeros(rows, cols)
}

// FromRows creates a matrix by copying the given rows.
func FromRows(rows [][]float64) (*Matrix, error) {
	return tensor.FromRows(rows)
}

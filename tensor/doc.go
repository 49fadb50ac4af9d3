// Copyright 2026 The mlpractical Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense float64 matrix underlying the
// training framework.
//
// # Overview
//
// A Matrix holds one batch of values: one row per example, one column per
// output dimension. Storage is row-major in a single flat slice, exposed
// through Data and RowView for kernels that iterate directly.
//
// # Basic Usage
//
//	import "github.com/orestis-z/mlpractical/tensor"
//
//	outputs, err := tensor.New(2, 3, []float64{
//	    0.1, 0.7, 0.2,
//	    0.8, 0.1, 0.1,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rows, cols := outputs.Dims()
//	first := outputs.RowView(0)
//
// # Failure Semantics
//
// Constructors validate their input and return errors. Accessors and
// operations panic instead, with the comparable sentinels ErrShape and
// ErrIndex, since a dimension or bounds violation inside a training step
// is a programming error rather than a recoverable condition.
package tensor

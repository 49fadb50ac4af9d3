// Copyright 2026 The mlpractical Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package errfunc provides the error functions used to train models.
//
// # Overview
//
// An error function turns a batch of model outputs and targets into a
// scalar training error and the gradient of that error with respect to
// the outputs. The scalar drives monitoring and convergence checks; the
// gradient seeds backpropagation. Five interchangeable variants share the
// ErrorFunc interface:
//   - SumOfSquaredDiffs for regression
//   - BinaryCrossEntropy and BinaryCrossEntropySigmoid for binary targets
//   - CrossEntropy and CrossEntropySoftmax for multi-class targets
//
// CrossEntropySoftmax can additionally read a Model's live parameters to
// add an L1 or L2 penalty to the error value.
//
// # Basic Usage
//
//	import (
//	    "github.com/orestis-z/mlpractical/errfunc"
//	    "github.com/orestis-z/mlpractical/tensor"
//	)
//
//	criterion := errfunc.NewCrossEntropySoftmax(model)
//
//	for step := 0; step < steps; step++ {
//	    outputs := forward(batchInputs)
//	    loss := criterion.Forward(outputs, batchTargets)
//	    grads := criterion.Backward(outputs, batchTargets)
//	    backward(grads)
//	}
//
// # Numeric Domain
//
// Variants taking probabilities expect them inside their open domain and
// do not clamp: IEEE-754 Inf and NaN values pass through untouched, so a
// non-finite loss is the caller's divergence signal. The softmax and
// sigmoid fused variants accept unbounded raw scores instead.
package errfunc

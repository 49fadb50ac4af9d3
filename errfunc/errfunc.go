// Copyright 2026 The mlpractical Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package errfunc

import (
	"github.com/orestis-z/mlpractical/internal/errfunc"
)

// ErrorFunc is the contract shared by every error function: a scalar
// error value, its gradient with respect to the outputs, and a stable
// name for training logs.
type ErrorFunc = errfunc.ErrorFunc

// Model is the read-only view of a trainable model consumed by
// CrossEntropySoftmax for regularization.
type Model = errfunc.Model

// Regularizer is a model's penalty configuration.
type Regularizer = errfunc.Regularizer

// Penalty selects the parameter penalty added to the error value.
type Penalty = errfunc.Penalty

const (
	// PenaltyNone disables regularization.
	PenaltyNone = errfunc.PenaltyNone
	// PenaltyL1 adds lambda times the L1 norm of the parameters.
	PenaltyL1 = errfunc.PenaltyL1
	// PenaltyL2 adds lambda times the Euclidean norm of the parameters.
	PenaltyL2 = errfunc.PenaltyL2
)

// ParsePenalty maps a configuration string to a Penalty. Unknown strings
// select PenaltyNone.
func ParsePenalty(s string) Penalty {
	return errfunc.ParsePenalty(s)
}

// Error functions

// SumOfSquaredDiffs is the half mean squared error for regression.
type SumOfSquaredDiffs = errfunc.SumOfSquaredDiffs

// NewSumOfSquaredDiffs creates a sum-of-squared-differences error function.
func NewSumOfSquaredDiffs() *SumOfSquaredDiffs {
	return errfunc.NewSumOfSquaredDiffs()
}

// BinaryCrossEntropy is the cross-entropy error for binary targets
// against probability outputs.
type BinaryCrossEntropy = errfunc.BinaryCrossEntropy

// NewBinaryCrossEntropy creates a binary cross-entropy error function.
func NewBinaryCrossEntropy() *BinaryCrossEntropy {
	return errfunc.NewBinaryCrossEntropy()
}

// BinaryCrossEntropySigmoid is the binary cross-entropy fused with a
// logistic sigmoid, taking raw scores.
type BinaryCrossEntropySigmoid = errfunc.BinaryCrossEntropySigmoid

// NewBinaryCrossEntropySigmoid creates a sigmoid-fused binary
// cross-entropy error function.
func NewBinaryCrossEntropySigmoid() *BinaryCrossEntropySigmoid {
	return errfunc.NewBinaryCrossEntropySigmoid()
}

// CrossEntropy is the multi-class cross-entropy error for probability
// outputs.
type CrossEntropy = errfunc.CrossEntropy

// NewCrossEntropy creates a multi-class cross-entropy error function.
func NewCrossEntropy() *CrossEntropy {
	return errfunc.NewCrossEntropy()
}

// CrossEntropySoftmax is the multi-class cross-entropy fused with a
// softmax, taking raw scores, with optional regularization read from the
// attached model.
type CrossEntropySoftmax = errfunc.CrossEntropySoftmax

// NewCrossEntropySoftmax creates a softmax-fused cross-entropy error
// function attached to model. A nil model disables regularization.
func NewCrossEntropySoftmax(model Model) *CrossEntropySoftmax {
	return errfunc.NewCrossEntropySoftmax(model)
}

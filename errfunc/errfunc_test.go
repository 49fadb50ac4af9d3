// Copyright 2026 The mlpractical Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package errfunc_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orestis-z/mlpractical/errfunc"
	"github.com/orestis-z/mlpractical/tensor"
)

// linearModel is a single-layer model, just big enough to exercise the
// regularization contract through the public API.
type linearModel struct {
	weights *tensor.Matrix
	biases  *tensor.Matrix
	reg     errfunc.Regularizer
}

func (m *linearModel) Params() []*tensor.Matrix {
	return []*tensor.Matrix{m.weights, m.biases}
}

func (m *linearModel) Regularizer() errfunc.Regularizer { return m.reg }

func TestVariantsAreInterchangeable(t *testing.T) {
	outputs := tensor.MustNew(2, 2, []float64{0.7, 0.3, 0.2, 0.8})
	targets := tensor.MustNew(2, 2, []float64{1, 0, 0, 1})

	variants := []errfunc.ErrorFunc{
		errfunc.NewSumOfSquaredDiffs(),
		errfunc.NewBinaryCrossEntropy(),
		errfunc.NewBinaryCrossEntropySigmoid(),
		errfunc.NewCrossEntropy(),
		errfunc.NewCrossEntropySoftmax(nil),
	}

	for _, criterion := range variants {
		t.Run(criterion.Name(), func(t *testing.T) {
			loss := criterion.Forward(outputs, targets)
			require.False(t, math.IsNaN(loss) || math.IsInf(loss, 0),
				"loss should be finite on in-domain inputs")

			grad := criterion.Backward(outputs, targets)
			require.True(t, grad.SameDims(outputs), "gradient dims must match outputs")
		})
	}
}

func TestRegularizedModelThroughPublicAPI(t *testing.T) {
	outputs := tensor.MustNew(1, 3, []float64{1, 2, 3})
	targets := tensor.MustNew(1, 3, []float64{0, 0, 1})

	// Weights flatten to [0.6 -0.8 0 0 0 0 0 0]: Euclidean norm 1.
	model := &linearModel{
		weights: tensor.MustNew(2, 3, []float64{0.6, -0.8, 0, 0, 0, 0}),
		biases:  tensor.MustNew(1, 2, []float64{0, 0}),
		reg:     errfunc.Regularizer{Kind: errfunc.ParsePenalty("L2"), Lambda: 0.5},
	}

	criterion := errfunc.NewCrossEntropySoftmax(model)
	base := errfunc.NewCrossEntropySoftmax(nil).Forward(outputs, targets)

	assert.InDelta(t, base+0.5, criterion.Forward(outputs, targets), 1e-12)

	// Disabling the penalty through the model takes effect immediately.
	model.reg = errfunc.Regularizer{Kind: errfunc.ParsePenalty("off"), Lambda: 0.5}
	assert.InDelta(t, base, criterion.Forward(outputs, targets), 1e-12)
}

package errfunc

import (
	"math"

	"github.com/orestis-z/mlpractical/internal/tensor"
)

// CrossEntropy is the multi-class cross-entropy error for outputs that are
// already per-class probabilities, one distribution per row.
//
// Forward:
//
//	E = -mean over batch of Σ_d tgt_d * log(out_d)
//
// Backward:
//
//	∂E/∂out = -(tgt/out) / batch
//
// Zero probabilities are not guarded: a zero output under a nonzero target
// yields -Inf log terms and ±Inf gradients per IEEE-754. Feed raw scores
// to CrossEntropySoftmax instead when that matters.
type CrossEntropy struct{}

// NewCrossEntropy creates a multi-class cross-entropy error function.
func NewCrossEntropy() *CrossEntropy {
	return &CrossEntropy{}
}

var _ ErrorFunc = (*CrossEntropy)(nil)

// Forward computes the negative mean of the per-row log-likelihood sums.
func (*CrossEntropy) Forward(outputs, targets *tensor.Matrix) float64 {
	checkDims(outputs, targets)
	rows, _ := outputs.Dims()

	out := outputs.Data()
	tgt := targets.Data()

	// Per-row sums averaged over the batch collapse into a single pass.
	var total float64
	for i := range out {
		total += tgt[i] * math.Log(out[i])
	}
	return -total / float64(rows)
}

// Backward computes -(targets/outputs) / batch.
func (*CrossEntropy) Backward(outputs, targets *tensor.Matrix) *tensor.Matrix {
	checkDims(outputs, targets)
	rows, cols := outputs.Dims()

	out := outputs.Data()
	tgt := targets.Data()

	grad := tensor.Zeros(rows, cols)
	gd := grad.Data()
	for i := range gd {
		gd[i] = -(tgt[i] / out[i]) / float64(rows)
	}
	return grad
}

// Name returns "CrossEntropyError".
func (*CrossEntropy) Name() string {
	return "CrossEntropyError"
}

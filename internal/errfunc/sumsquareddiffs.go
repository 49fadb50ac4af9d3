package errfunc

import (
	"github.com/orestis-z/mlpractical/internal/tensor"
)

// SumOfSquaredDiffs is the squared-distance error for regression, with the
// conventional 1/2 factor so the gradient is the plain difference.
//
// Forward:
//
//	E = mean over batch of 0.5 * Σ_d (out_d - tgt_d)²
//
// Backward:
//
//	∂E/∂out = (out - tgt) / batch
//
// Defined for all real outputs and targets.
type SumOfSquaredDiffs struct{}

// NewSumOfSquaredDiffs creates a sum-of-squared-differences error function.
func NewSumOfSquaredDiffs() *SumOfSquaredDiffs {
	return &SumOfSquaredDiffs{}
}

var _ ErrorFunc = (*SumOfSquaredDiffs)(nil)

// Forward computes the batch-averaged half squared distance.
func (*SumOfSquaredDiffs) Forward(outputs, targets *tensor.Matrix) float64 {
	checkDims(outputs, targets)
	rows, _ := outputs.Dims()

	out := outputs.Data()
	tgt := targets.Data()

	var total float64
	for i := range out {
		d := out[i] - tgt[i]
		total += d * d
	}
	return 0.5 * total / float64(rows)
}

// Backward computes (outputs - targets) / batch.
func (*SumOfSquaredDiffs) Backward(outputs, targets *tensor.Matrix) *tensor.Matrix {
	checkDims(outputs, targets)
	rows, cols := outputs.Dims()

	out := outputs.Data()
	tgt := targets.Data()

	grad := tensor.Zeros(rows, cols)
	gd := grad.Data()
	for i := range gd {
		gd[i] = (out[i] - tgt[i]) / float64(rows)
	}
	return grad
}

// Name returns "MeanSquaredErrorCost".
func (*SumOfSquaredDiffs) Name() string {
	return "MeanSquaredErrorCost"
}

package errfunc

import (
	"math"

	"github.com/orestis-z/mlpractical/internal/tensor"
)

// BinaryCrossEntropy is the cross-entropy error for independent binary
// targets against outputs that are already probabilities.
//
// Forward:
//
//	E = -mean(tgt*log(out) + (1-tgt)*log(1-out))
//
// where the mean runs over every entry of the batch, not over rows.
// Backward:
//
//	∂E/∂out = ((1-tgt)/(1-out) - tgt/out) / batch
//
// Outputs are expected to lie strictly inside (0, 1). The bound is not
// enforced: log and division follow IEEE-754, so degenerate probabilities
// surface as ±Inf or NaN instead of being clamped away.
type BinaryCrossEntropy struct{}

// NewBinaryCrossEntropy creates a binary cross-entropy error function.
func NewBinaryCrossEntropy() *BinaryCrossEntropy {
	return &BinaryCrossEntropy{}
}

var _ ErrorFunc = (*BinaryCrossEntropy)(nil)

// Forward computes the negative mean binary log-likelihood over all
// entries.
func (*BinaryCrossEntropy) Forward(outputs, targets *tensor.Matrix) float64 {
	checkDims(outputs, targets)

	out := outputs.Data()
	tgt := targets.Data()

	var total float64
	for i := range out {
		total += tgt[i]*math.Log(out[i]) + (1-tgt[i])*math.Log(1-out[i])
	}
	return -total / float64(len(out))
}

// Backward computes ((1-targets)/(1-outputs) - targets/outputs) / batch.
func (*BinaryCrossEntropy) Backward(outputs, targets *tensor.Matrix) *tensor.Matrix {
	checkDims(outputs, targets)
	rows, cols := outputs.Dims()

	out := outputs.Data()
	tgt := targets.Data()

	grad := tensor.Zeros(rows, cols)
	gd := grad.Data()
	for i := range gd {
		gd[i] = ((1-tgt[i])/(1-out[i]) - tgt[i]/out[i]) / float64(rows)
	}
	return grad
}

// Name returns "BinaryCrossEntropyError".
func (*BinaryCrossEntropy) Name() string {
	return "BinaryCrossEntropyError"
}

// BinaryCrossEntropySigmoid is BinaryCrossEntropy fused with a logistic
// sigmoid: outputs are raw scores, squashed internally before the
// cross-entropy. The fused gradient
//
//	∂E/∂out = (sigmoid(out) - tgt) / batch
//
// cancels the division of the unfused form and stays finite for any
// real-valued score, which is the reason to prefer this variant whenever
// the final layer would otherwise end in a separate sigmoid.
type BinaryCrossEntropySigmoid struct{}

// NewBinaryCrossEntropySigmoid creates a sigmoid-fused binary
// cross-entropy error function.
func NewBinaryCrossEntropySigmoid() *BinaryCrossEntropySigmoid {
	return &BinaryCrossEntropySigmoid{}
}

var _ ErrorFunc = (*BinaryCrossEntropySigmoid)(nil)

// Forward applies the sigmoid to every output and computes the negative
// mean binary log-likelihood over all entries.
func (*BinaryCrossEntropySigmoid) Forward(outputs, targets *tensor.Matrix) float64 {
	checkDims(outputs, targets)

	out := outputs.Data()
	tgt := targets.Data()

	var total float64
	for i := range out {
		p := sigmoid(out[i])
		total += tgt[i]*math.Log(p) + (1-tgt[i])*math.Log(1-p)
	}
	return -total / float64(len(out))
}

// Backward computes (sigmoid(outputs) - targets) / batch.
func (*BinaryCrossEntropySigmoid) Backward(outputs, targets *tensor.Matrix) *tensor.Matrix {
	checkDims(outputs, targets)
	rows, cols := outputs.Dims()

	out := outputs.Data()
	tgt := targets.Data()

	grad := tensor.Zeros(rows, cols)
	gd := grad.Data()
	for i := range gd {
		gd[i] = (sigmoid(out[i]) - tgt[i]) / float64(rows)
	}
	return grad
}

// Name returns "BinaryCrossEntropySigmoidError".
func (*BinaryCrossEntropySigmoid) Name() string {
	return "BinaryCrossEntropySigmoidError"
}

// sigmoid is the logistic function 1 / (1 + exp(-x)).
func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

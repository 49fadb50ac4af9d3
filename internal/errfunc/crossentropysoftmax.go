package errfunc

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/orestis-z/mlpractical/internal/tensor"
)

// CrossEntropySoftmax fuses the softmax of raw scores with the multi-class
// cross-entropy, plus an optional parameter penalty read from the attached
// model.
//
// Forward applies the max-shifted log-softmax per row
//
//	logProb = out - max(out) - log(Σ exp(out - max(out)))
//	E = -mean over batch of Σ_d tgt_d * logProb_d
//
// and, when the model carries an L1 or L2 regularizer, adds
// lambda*‖w‖₁ or lambda*‖w‖₂ over the concatenated parameter matrices.
// The shift by the row maximum keeps the exponentials in range and cancels
// out of the result, so adding a constant to a row never changes value or
// gradient.
//
// Backward:
//
//	∂E/∂out = (softmax(out) - tgt) / batch
//
// The penalty contributes nothing to Backward: its gradient is with
// respect to the parameters and belongs to the update step.
//
// The model is read fresh on every call, so parameter edits and
// regularizer changes between steps take immediate effect. A nil model
// means no penalty.
type CrossEntropySoftmax struct {
	model Model
}

// NewCrossEntropySoftmax creates a softmax-fused cross-entropy error
// function attached to model. A nil model disables regularization.
func NewCrossEntropySoftmax(model Model) *CrossEntropySoftmax {
	return &CrossEntropySoftmax{model: model}
}

var _ ErrorFunc = (*CrossEntropySoftmax)(nil)

// Forward computes the batch-averaged cross-entropy of the softmaxed
// scores, plus the model's regularization penalty.
func (c *CrossEntropySoftmax) Forward(outputs, targets *tensor.Matrix) float64 {
	checkDims(outputs, targets)
	rows, _ := outputs.Dims()

	var total float64
	for i := 0; i < rows; i++ {
		row := outputs.RowView(i)
		trow := targets.RowView(i)

		lse := logSumExp(row)
		for j, v := range row {
			total += trow[j] * (v - lse)
		}
	}
	return -total/float64(rows) + c.penalty()
}

// Backward computes (softmax(outputs) - targets) / batch.
func (c *CrossEntropySoftmax) Backward(outputs, targets *tensor.Matrix) *tensor.Matrix {
	checkDims(outputs, targets)
	rows, cols := outputs.Dims()

	grad := tensor.Zeros(rows, cols)
	for i := 0; i < rows; i++ {
		row := outputs.RowView(i)
		trow := targets.RowView(i)
		grow := grad.RowView(i)

		lse := logSumExp(row)
		for j, v := range row {
			grow[j] = (math.Exp(v-lse) - trow[j]) / float64(rows)
		}
	}
	return grad
}

// Name returns "CrossEntropySoftmaxError".
func (c *CrossEntropySoftmax) Name() string {
	return "CrossEntropySoftmaxError"
}

// penalty returns the regularization term for the current model state, or
// zero when no model or no recognized penalty kind is attached.
func (c *CrossEntropySoftmax) penalty() float64 {
	if c.model == nil {
		return 0
	}
	reg := c.model.Regularizer()
	switch reg.Kind {
	case PenaltyL1:
		return reg.Lambda * floats.Norm(flatParams(c.model), 1)
	case PenaltyL2:
		return reg.Lambda * floats.Norm(flatParams(c.model), 2)
	}
	return 0
}

// logSumExp returns log(Σ exp(row)), shifted by the row maximum so the
// exponentials cannot overflow.
func logSumExp(row []float64) float64 {
	shift := floats.Max(row)
	var sum float64
	for _, v := range row {
		sum += math.Exp(v - shift)
	}
	return shift + math.Log(sum)
}

package errfunc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/orestis-z/mlpractical/internal/tensor"
)

// numericalGrad evaluates the central finite-difference gradient of
// Forward with respect to every output coordinate.
func numericalGrad(ef ErrorFunc, outputs, targets *tensor.Matrix) []float64 {
	rows, cols := outputs.Dims()
	f := func(x []float64) float64 {
		return ef.Forward(tensor.MustNew(rows, cols, x), targets)
	}
	x := append([]float64(nil), outputs.Data()...)
	return fd.Gradient(nil, f, x, &fd.Settings{Formula: fd.Central})
}

func TestGradientMatchesFiniteDifference(t *testing.T) {
	outputs := tensor.MustNew(2, 3, []float64{
		0.2, 0.5, 0.3,
		0.25, 0.35, 0.4,
	})
	// Rows sum to one, as the multi-class variants expect of targets.
	targets := tensor.MustNew(2, 3, []float64{
		0, 1, 0,
		0.2, 0.3, 0.5,
	})

	cases := []ErrorFunc{
		NewSumOfSquaredDiffs(),
		NewCrossEntropy(),
		NewCrossEntropySoftmax(nil),
		NewCrossEntropySoftmax(newStubModel(PenaltyL2, 0.1)), // penalty is constant in outputs
	}
	for _, ef := range cases {
		t.Run(ef.Name(), func(t *testing.T) {
			grad := ef.Backward(outputs, targets).Data()
			want := numericalGrad(ef, outputs, targets)
			for i, w := range want {
				assert.InDelta(t, w, grad[i], 1e-6, "coordinate %d", i)
			}
		})
	}
}

func TestBinaryGradientMatchesFiniteDifference(t *testing.T) {
	// Single-column batches: the binary variants average their value over
	// every entry but divide the gradient by the batch size, so the two
	// scalings only coincide with one output per example.
	probs := tensor.MustNew(4, 1, []float64{0.2, 0.8, 0.55, 0.3})
	scores := tensor.MustNew(4, 1, []float64{-1.5, 0.3, 2.0, -0.4})
	targets := tensor.MustNew(4, 1, []float64{0, 1, 1, 0})

	bce := NewBinaryCrossEntropy()
	grad := bce.Backward(probs, targets).Data()
	want := numericalGrad(bce, probs, targets)
	for i, w := range want {
		assert.InDelta(t, w, grad[i], 1e-6, "coordinate %d", i)
	}

	bces := NewBinaryCrossEntropySigmoid()
	grad = bces.Backward(scores, targets).Data()
	want = numericalGrad(bces, scores, targets)
	for i, w := range want {
		assert.InDelta(t, w, grad[i], 1e-6, "coordinate %d", i)
	}
}

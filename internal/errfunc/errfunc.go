package errfunc

import (
	"github.com/orestis-z/mlpractical/internal/tensor"
)

// ErrorFunc is the contract every error function in this package
// satisfies. The scalar value drives monitoring and convergence checks;
// the gradient with respect to the outputs seeds backpropagation through
// the network.
//
// Both computations require outputs and targets of identical dimensions
// and panic with tensor.ErrShape before any numeric work otherwise. There
// is no broadcasting.
type ErrorFunc interface {
	// Forward returns the scalar error value for a batch, averaged over
	// the batch dimension.
	Forward(outputs, targets *tensor.Matrix) float64

	// Backward returns d(error)/d(outputs) with the dimensions of
	// outputs, already scaled by 1/batch.
	Backward(outputs, targets *tensor.Matrix) *tensor.Matrix

	// Name returns the stable identifier for training logs.
	Name() string
}

// checkDims guards the shared shape contract.
func checkDims(outputs, targets *tensor.Matrix) {
	if !outputs.SameDims(targets) {
		panic(tensor.ErrShape)
	}
}

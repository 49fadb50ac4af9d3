// Package errfunc provides the error functions of the training framework:
// interchangeable loss computations producing a scalar error value and its
// gradient with respect to the model outputs.
//
// Five variants are available:
//   - SumOfSquaredDiffs: half mean squared error for regression
//   - BinaryCrossEntropy: binary targets against probability outputs
//   - BinaryCrossEntropySigmoid: binary targets against raw scores
//   - CrossEntropy: multi-class targets against probability outputs
//   - CrossEntropySoftmax: multi-class targets against raw scores, with
//     optional L1/L2 regularization read from the attached model
//
// All variants average over the batch (the leading dimension), so error
// values and gradients stay comparable across batch sizes.
//
// Example usage:
//
//	criterion := errfunc.NewCrossEntropySoftmax(model)
//
//	for batch := range batches {
//	    outputs := forwardPass(batch)
//	    loss := criterion.Forward(outputs, batch.Targets)
//	    grads := criterion.Backward(outputs, batch.Targets)
//	    backwardPass(grads)
//	}
//
// Error functions never clamp or repair their inputs: outputs outside a
// variant's numeric domain produce IEEE-754 Inf or NaN values that
// propagate to the caller, which should treat a non-finite loss as a
// training-divergence signal.
package errfunc

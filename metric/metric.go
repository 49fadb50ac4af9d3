// Package metric provides training-loop metrics: classification accuracy
// over a batch and a windowed loss monitor for logging.
package metric

import (
	"github.com/orestis-z/mlpractical/internal/metric"
	"github.com/orestis-z/mlpractical/internal/tensor"
)

// Accuracy returns the fraction of rows whose output argmax matches the
// target argmax. Panics with tensor.ErrShape if the dimensions differ.
func Accuracy(outputs, targets *tensor.Matrix) float64 {
	return metric.Accuracy(outputs, targets)
}

// Window accumulates per-step loss observations between log points. The
// zero value is ready to use.
type Window = metric.Window

// Snapshot represents loggable training metrics for one window, including
// whether any recorded loss was non-finite.
type Snapshot = metric.Snapshot

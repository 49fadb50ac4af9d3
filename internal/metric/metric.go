package metric

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/orestis-z/mlpractical/internal/tensor"
)

// Accuracy returns the fraction of rows whose predicted class matches the
// target class, both taken as the argmax of the respective row. Targets
// may be one-hot or soft distributions; ties resolve to the first maximum.
// Panics with tensor.ErrShape if the dimensions differ.
func Accuracy(outputs, targets *tensor.Matrix) float64 {
	if !outputs.SameDims(targets) {
		panic(tensor.ErrShape)
	}
	rows, _ := outputs.Dims()

	correct := 0
	for i := 0; i < rows; i++ {
		if floats.MaxIdx(outputs.RowView(i)) == floats.MaxIdx(targets.RowView(i)) {
			correct++
		}
	}
	return float64(correct) / float64(rows)
}

// Window accumulates per-step loss observations between log points. The
// zero value is ready to use. Not safe for concurrent use.
type Window struct {
	steps    int
	total    float64
	lastLoss float64
	diverged bool
}

// Record adds one training step's loss to the window.
func (w *Window) Record(loss float64) {
	w.steps++
	w.total += loss
	w.lastLoss = loss
	if math.IsNaN(loss) || math.IsInf(loss, 0) {
		w.diverged = true
	}
}

// Snapshot returns the aggregated metrics and resets the window.
func (w *Window) Snapshot() Snapshot {
	snap := Snapshot{
		Steps:    w.steps,
		LastLoss: w.lastLoss,
		Diverged: w.diverged,
	}
	if w.steps > 0 {
		snap.MeanLoss = w.total / float64(w.steps)
	}
	*w = Window{}
	return snap
}

// Snapshot represents loggable training metrics for one window.
type Snapshot struct {
	Steps    int
	MeanLoss float64
	LastLoss float64
	Diverged bool // a recorded loss was NaN or infinite
}

package errfunc

import (
	"github.com/orestis-z/mlpractical/internal/tensor"
)

// Model is the read-only view of a trainable model that CrossEntropySoftmax
// needs for regularization: the live parameter matrices and the current
// penalty configuration. The training loop owns the model; error functions
// never mutate it.
type Model interface {
	// Params returns the parameter matrices in their declared order. The
	// returned matrices are live views, not copies.
	Params() []*tensor.Matrix

	// Regularizer returns the penalty configuration in effect.
	Regularizer() Regularizer
}

// Penalty selects the parameter penalty added to the error value.
type Penalty int

const (
	// PenaltyNone disables regularization.
	PenaltyNone Penalty = iota
	// PenaltyL1 adds lambda times the L1 norm of the flattened parameters.
	PenaltyL1
	// PenaltyL2 adds lambda times the Euclidean norm (not its square) of
	// the flattened parameters.
	PenaltyL2
)

// String returns "L1", "L2" or "None". Values outside the defined set
// behave as PenaltyNone everywhere, including here.
func (p Penalty) String() string {
	switch p {
	case PenaltyL1:
		return "L1"
	case PenaltyL2:
		return "L2"
	}
	return "None"
}

// ParsePenalty maps a configuration string to a Penalty. "L1" and "L2"
// select the matching penalty; every other value, the empty string
// included, is PenaltyNone. An unrecognized kind is not an error: a model
// configured with one trains unregularized.
func ParsePenalty(s string) Penalty {
	switch s {
	case "L1":
		return PenaltyL1
	case "L2":
		return PenaltyL2
	}
	return PenaltyNone
}

// Regularizer is a model's penalty configuration: which norm to apply and
// its weight.
type Regularizer struct {
	Kind   Penalty
	Lambda float64 // non-negative
}

// flatParams concatenates every parameter matrix of m, in declared order,
// into one vector.
func flatParams(m Model) []float64 {
	params := m.Params()

	var n int
	for _, p := range params {
		r, c := p.Dims()
		n += r * c
	}

	w := make([]float64, 0, n)
	for _, p := range params {
		w = append(w, p.Data()...)
	}
	return w
}

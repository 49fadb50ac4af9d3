package tensor

// Error is the value matrix operations panic with when a caller breaks an
// operation's contract. It is comparable, so recovered panics can be
// matched against the package sentinels.
type Error struct {
	msg string
}

func (e Error) Error() string { return e.msg }

var (
	// ErrShape is the panic value for operations on matrices whose
	// dimensions must match but do not.
	ErrShape = Error{"tensor: dimension mismatch"}

	// ErrIndex is the panic value for a row or column index outside the
	// matrix bounds.
	ErrIndex = Error{"tensor: index out of range"}
)

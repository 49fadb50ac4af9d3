package tensor

import (
	"github.com/pkg/errors"
)

// Matrix is a dense, row-major matrix of float64 values. It is the
// in-memory form of a batch: one row per example, one column per output
// dimension.
type Matrix struct {
	rows int
	cols int
	data []float64
}

// New creates a rows x cols matrix backed by data. A nil data slice
// allocates a zeroed backing store; otherwise the matrix takes ownership
// of data, which must hold exactly rows*cols values.
func New(rows, cols int, data []float64) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Errorf("tensor: invalid dimensions %dx%d (must be positive)", rows, cols)
	}
	if data == nil {
		data = make([]float64, rows*cols)
	} else if len(data) != rows*cols {
		return nil, errors.Errorf("tensor: data length %d does not match dimensions %dx%d", len(data), rows, cols)
	}
	return &Matrix{rows: rows, cols: cols, data: data}, nil
}

// MustNew is like New but panics on invalid input. Intended for fixed-size
// literals and tests.
func MustNew(rows, cols int, data []float64) *Matrix {
	m, err := New(rows, cols, data)
	if err != nil {
		panic(err)
	}
	return m
}

// Zeros creates a rows x cols matrix of zeros.
func Zeros(rows, cols int) *Matrix {
	return MustNew(rows, cols, nil)
}

// FromRows creates a matrix by copying the given rows. All rows must have
// the same non-zero length.
func FromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, errors.New("tensor: no rows given")
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, errors.New("tensor: rows must not be empty")
	}
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, errors.Errorf("tensor: ragged input: row %d has %d values, want %d", i, len(row), cols)
		}
		data = append(data, row...)
	}
	return New(len(rows), cols, data)
}

// Dims returns the number of rows and columns.
func (m *Matrix) Dims() (rows, cols int) {
	return m.rows, m.cols
}

// SameDims reports whether m and other have identical dimensions.
func (m *Matrix) SameDims(other *Matrix) bool {
	return m.rows == other.rows && m.cols == other.cols
}

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(ErrIndex)
	}
	return m.data[i*m.cols+j]
}

// Set stores v at row i, column j.
func (m *Matrix) Set(i, j int, v float64) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(ErrIndex)
	}
	m.data[i*m.cols+j] = v
}

// Data returns the flat row-major backing slice. The slice aliases the
// matrix: writes through it are visible to every view of the matrix.
func (m *Matrix) Data() []float64 {
	return m.data
}

// RowView returns row i as a slice aliasing the backing store.
func (m *Matrix) RowView(i int) []float64 {
	if i < 0 || i >= m.rows {
		panic(ErrIndex)
	}
	return m.data[i*m.cols : (i+1)*m.cols]
}

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Matrix{rows: m.rows, cols: m.cols, data: data}
}

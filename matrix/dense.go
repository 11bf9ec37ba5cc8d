// Package matrix provides the dense numeric storage used by every
// matching-market engine in this module.
package matrix

import (
	"fmt"
	"math"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// DefaultValidateNaNInf toggles strict finite-value validation on Set.
// Cardinal utilities are always expected to be finite; callers that
// genuinely need to carry a non-finite sentinel can opt out per matrix
// with WithNoValidateNaNInf.
const DefaultValidateNaNInf = true

// Dense is a row-major matrix of float64 values, used to hold cardinal
// utilities (ProposerUtils, ReviewerUtils).
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c           int       // number of rows and columns
	data           []float64 // flat backing storage, length == r*c
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// DenseOption configures numeric policy at construction time.
type DenseOption func(*Dense)

// WithNoValidateNaNInf disables NaN/Inf rejection on Set for the matrix
// being constructed. Off by default: utilities are finite unless a caller
// explicitly opts out.
func WithNoValidateNaNInf() DenseOption {
	return func(m *Dense) { m.validateNaNInf = false }
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int, opts ...DenseOption) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	data := make([]float64, rows*cols)
	m := &Dense{r: rows, c: cols, data: data, validateNaNInf: DefaultValidateNaNInf}
	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// NewDenseFromColumns builds a Dense matrix from a slice of columns, each of
// length rows — the natural literal form for utility matrices, where column
// j holds agent j's cardinal values. Returns ErrDimensionMismatch if columns
// disagree in length.
func NewDenseFromColumns(cols [][]float64) (*Dense, error) {
	if len(cols) == 0 {
		return nil, ErrInvalidDimensions
	}
	rows := len(cols[0])
	m, err := NewDense(rows, len(cols))
	if err != nil {
		return nil, err
	}
	for j, col := range cols {
		if len(col) != rows {
			return nil, ErrDimensionMismatch
		}
		for i, v := range col {
			if err := m.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c
}

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) {
	return m.r, m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf("At", row, col, err)
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col). Rejects NaN/±Inf when the matrix's
// numeric policy requires finite values (the default).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf("Set", row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf("Set", row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Column returns a copy of column j as a []float64, row 0 first.
// Complexity: O(r).
func (m *Dense) Column(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf("Column", 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Clone returns a deep copy of the Dense matrix, preserving its numeric policy.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() *Dense {
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData, validateNaNInf: m.validateNaNInf}
}

// WithAddedRow returns a new Dense with one extra row appended, every entry
// of that row set to fill. Used by the two-sided stability checker to pad
// the short side's utility matrix with a virtual "unmatched" row before the
// blocking-pair scan.
// Complexity: O(r*c) time and memory.
func (m *Dense) WithAddedRow(fill float64) *Dense {
	out := &Dense{r: m.r + 1, c: m.c, data: make([]float64, (m.r+1)*m.c), validateNaNInf: m.validateNaNInf}
	copy(out.data, m.data)
	for j := 0; j < m.c; j++ {
		out.data[m.r*m.c+j] = fill
	}

	return out
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var s string
	for i := 0; i < m.r; i++ {
		s += "["
		for j := 0; j < m.c; j++ {
			s += fmt.Sprintf("%g", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}

package matkit

import (
	"fmt"
	"math/big"
)

// Matrix is a dense, row-major matrix of exact rationals. It mirrors the
// teacher's Dense type (flat backing slice, row*cols+col indexing) with
// *big.Rat entries instead of float64.
type Matrix struct {
	r, c int
	data []*big.Rat
}

// New returns an r×c Matrix initialized to zero.
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	data := make([]*big.Rat, rows*cols)
	for i := range data {
		data[i] = new(big.Rat)
	}
	return &Matrix{r: rows, c: cols, data: data}, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Matrix, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i].SetInt64(1)
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.c }

func (m *Matrix) index(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}
	return row*m.c + col, nil
}

// At returns the element at (row, col).
func (m *Matrix) At(row, col int) *big.Rat {
	idx, err := m.index(row, col)
	if err != nil {
		panic(fmt.Sprintf("matkit: At(%d,%d): %v", row, col, err))
	}
	return m.data[idx]
}

// Set assigns v at (row, col).
func (m *Matrix) Set(row, col int, v *big.Rat) {
	idx, err := m.index(row, col)
	if err != nil {
		panic(fmt.Sprintf("matkit: Set(%d,%d): %v", row, col, err))
	}
	m.data[idx] = new(big.Rat).Set(v)
}

// Row returns a copy of row i as a slice of length Cols().
func (m *Matrix) Row(i int) []*big.Rat {
	out := make([]*big.Rat, m.c)
	for j := 0; j < m.c; j++ {
		out[j] = new(big.Rat).Set(m.data[i*m.c+j])
	}
	return out
}

// SetRow overwrites row i with the given values (length must equal Cols()).
func (m *Matrix) SetRow(i int, vals []*big.Rat) error {
	if len(vals) != m.c {
		return ErrDimensionMismatch
	}
	for j, v := range vals {
		m.data[i*m.c+j] = new(big.Rat).Set(v)
	}
	return nil
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	data := make([]*big.Rat, len(m.data))
	for i, v := range m.data {
		data[i] = new(big.Rat).Set(v)
	}
	return &Matrix{r: m.r, c: m.c, data: data}
}

// DropRows returns a copy of m with the given row indices removed. Indices
// need not be sorted.
func DropRows(m *Matrix, idxs ...int) (*Matrix, error) {
	drop := make(map[int]bool, len(idxs))
	for _, i := range idxs {
		if i < 0 || i >= m.r {
			return nil, ErrOutOfRange
		}
		drop[i] = true
	}
	out, err := New(m.r-len(drop), m.c)
	if err != nil {
		return nil, err
	}
	row := 0
	for i := 0; i < m.r; i++ {
		if drop[i] {
			continue
		}
		if err := out.SetRow(row, m.Row(i)); err != nil {
			return nil, err
		}
		row++
	}
	return out, nil
}

// DropCols returns a copy of m with the given column indices removed.
func DropCols(m *Matrix, idxs ...int) (*Matrix, error) {
	drop := make(map[int]bool, len(idxs))
	for _, j := range idxs {
		if j < 0 || j >= m.c {
			return nil, ErrOutOfRange
		}
		drop[j] = true
	}
	out, err := New(m.r, m.c-len(drop))
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.r; i++ {
		col := 0
		for j := 0; j < m.c; j++ {
			if drop[j] {
				continue
			}
			out.Set(i, col, m.At(i, j))
			col++
		}
	}
	return out, nil
}

// Product returns a*b.
func Product(a, b *Matrix) (*Matrix, error) {
	if a.c != b.r {
		return nil, ErrDimensionMismatch
	}
	out, err := New(a.r, b.c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.r; i++ {
		for j := 0; j < b.c; j++ {
			sum := new(big.Rat)
			for k := 0; k < a.c; k++ {
				t := new(big.Rat).Mul(a.At(i, k), b.At(k, j))
				sum.Add(sum, t)
			}
			out.Set(i, j, sum)
		}
	}
	return out, nil
}

// VecMulRow returns the row vector v*m (len(v) must equal m.Rows()).
func VecMulRow(v []*big.Rat, m *Matrix) ([]*big.Rat, error) {
	if len(v) != m.r {
		return nil, ErrDimensionMismatch
	}
	out := make([]*big.Rat, m.c)
	for j := 0; j < m.c; j++ {
		sum := new(big.Rat)
		for k := 0; k < m.r; k++ {
			t := new(big.Rat).Mul(v[k], m.At(k, j))
			sum.Add(sum, t)
		}
		out[j] = sum
	}
	return out, nil
}

// MulVec returns the column vector m*v (len(v) must equal m.Cols()).
func MulVec(m *Matrix, v []*big.Rat) ([]*big.Rat, error) {
	if len(v) != m.c {
		return nil, ErrDimensionMismatch
	}
	out := make([]*big.Rat, m.r)
	for i := 0; i < m.r; i++ {
		sum := new(big.Rat)
		for k := 0; k < m.c; k++ {
			t := new(big.Rat).Mul(m.At(i, k), v[k])
			sum.Add(sum, t)
		}
		out[i] = sum
	}
	return out, nil
}

// String renders m for debugging.
func (m *Matrix) String() string {
	s := ""
	for i := 0; i < m.r; i++ {
		s += "["
		for j := 0; j < m.c; j++ {
			s += m.data[i*m.c+j].RatString()
			if j < m.c-1 {
				s += ", "
			}
		}
		s += "]\n"
	}
	return s
}

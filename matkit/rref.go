package matkit

import "math/big"

// RREF reduces m to reduced row-echelon form in place on a clone and
// returns it together with the pivot column chosen for each row (in row
// order; rows with no pivot, i.e. all-zero rows produced by a dependent
// input, are skipped and not reported).
//
// This is the shared Gaussian-elimination kernel used by NewCoordChange and,
// in package hull, by equality canonicalisation and the left-null-space
// computation of the affine hull. (The independent-bounds dependence test
// reduces rows incrementally with its own helper instead.)
func RREF(m *Matrix) (*Matrix, []int) {
	out := m.Clone()
	pivots := make([]int, 0, out.r)
	row := 0
	for col := 0; col < out.c && row < out.r; col++ {
		pivotRow := -1
		for i := row; i < out.r; i++ {
			if out.At(i, col).Sign() != 0 {
				pivotRow = i
				break
			}
		}
		if pivotRow == -1 {
			continue
		}
		if pivotRow != row {
			swapRows(out, row, pivotRow)
		}
		scaleRow(out, row, new(big.Rat).Inv(out.At(row, col)))
		for i := 0; i < out.r; i++ {
			if i == row {
				continue
			}
			factor := out.At(i, col)
			if factor.Sign() == 0 {
				continue
			}
			addScaledRow(out, i, row, new(big.Rat).Neg(factor))
		}
		pivots = append(pivots, col)
		row++
	}
	return out, pivots
}

func swapRows(m *Matrix, a, b int) {
	ra, rb := m.Row(a), m.Row(b)
	_ = m.SetRow(a, rb)
	_ = m.SetRow(b, ra)
}

func scaleRow(m *Matrix, row int, k *big.Rat) {
	r := m.Row(row)
	for j := range r {
		r[j] = new(big.Rat).Mul(r[j], k)
	}
	_ = m.SetRow(row, r)
}

// addScaledRow performs row(dst) += k * row(src).
func addScaledRow(m *Matrix, dst, src int, k *big.Rat) {
	d := m.Row(dst)
	s := m.Row(src)
	for j := range d {
		t := new(big.Rat).Mul(s[j], k)
		d[j] = new(big.Rat).Add(d[j], t)
	}
	_ = m.SetRow(dst, d)
}

// Inverse returns the inverse of the square matrix m via Gauss-Jordan
// elimination on [m | I], or ErrSingular if m has no inverse.
func Inverse(m *Matrix) (*Matrix, error) {
	if m.r != m.c {
		return nil, ErrDimensionMismatch
	}
	n := m.r
	aug, err := New(n, 2*n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			aug.Set(i, j, m.At(i, j))
		}
		aug.Set(i, n+i, big.NewRat(1, 1))
	}
	row := 0
	for col := 0; col < n; col++ {
		pivotRow := -1
		for i := row; i < n; i++ {
			if aug.At(i, col).Sign() != 0 {
				pivotRow = i
				break
			}
		}
		if pivotRow == -1 {
			return nil, ErrSingular
		}
		if pivotRow != row {
			swapRows(aug, row, pivotRow)
		}
		scaleRow(aug, row, new(big.Rat).Inv(aug.At(row, col)))
		for i := 0; i < n; i++ {
			if i == row {
				continue
			}
			factor := aug.At(i, col)
			if factor.Sign() == 0 {
				continue
			}
			addScaledRow(aug, i, row, new(big.Rat).Neg(factor))
		}
		row++
	}
	if row != n {
		return nil, ErrSingular
	}
	out, err := New(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.Set(i, j, aug.At(i, n+j))
		}
	}
	return out, nil
}

// Solve solves m*x = b for a square, non-singular m via Gauss-Jordan
// elimination on the augmented system.
func Solve(m *Matrix, b []*big.Rat) ([]*big.Rat, error) {
	inv, err := Inverse(m)
	if err != nil {
		return nil, err
	}
	return MulVec(inv, b)
}

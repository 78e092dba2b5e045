package matkit

import (
	"math/big"

	"github.com/presburger/uhull/ratio"
)

// CoordChange is the affine coordinate change built from a set of k linearly
// independent equalities over a d-dimensional space (spec §4.7 step 3:
// "compute right-inverse U and its inverse Q ... transform bounds through U
// then Q"). It re-expresses points as x = P + Minv*z, chosen so that the k
// equalities collapse to z_1 = ... = z_k = 0; the remaining z_{k+1..d}
// parametrize the (d-k)-dimensional slice.
type CoordChange struct {
	D, K int
	// M is the forward map used by Preimage (z = M*(x-P) when going the
	// other way); Minv = M^-1 is the right-inverse used by Transform.
	M, Minv *Matrix
	P       []*big.Rat // particular solution of the k equalities
}

// NewCoordChange builds the coordinate change eliminating eqs, which must be
// linearly independent (ErrNotFullRowRank otherwise).
func NewCoordChange(eqs []ratio.Form) (*CoordChange, error) {
	k := len(eqs)
	d := eqs[0].Dim()

	aug, err := New(k, d+1)
	if err != nil {
		return nil, err
	}
	for i, e := range eqs {
		for j := 1; j <= d; j++ {
			aug.Set(i, j-1, new(big.Rat).SetInt(e.Coeff(j)))
		}
		// normal·p = -c0
		aug.Set(i, d, new(big.Rat).Neg(new(big.Rat).SetInt(e.Const())))
	}

	red, pivots := RREF(aug)
	if len(pivots) != k {
		return nil, ErrNotFullRowRank
	}
	for _, pc := range pivots {
		if pc == d {
			return nil, ErrNotFullRowRank
		}
	}

	pivotSet := make(map[int]bool, k)
	for _, pc := range pivots {
		pivotSet[pc] = true
	}

	M, err := New(d, d)
	if err != nil {
		return nil, err
	}
	for i := 0; i < k; i++ {
		row := make([]*big.Rat, d)
		for j := 0; j < d; j++ {
			row[j] = red.At(i, j)
		}
		if err := M.SetRow(i, row); err != nil {
			return nil, err
		}
	}
	row := k
	for j := 0; j < d; j++ {
		if pivotSet[j] {
			continue
		}
		unit := make([]*big.Rat, d)
		for t := range unit {
			unit[t] = new(big.Rat)
		}
		unit[j] = big.NewRat(1, 1)
		if err := M.SetRow(row, unit); err != nil {
			return nil, err
		}
		row++
	}

	Minv, err := Inverse(M)
	if err != nil {
		return nil, err
	}

	p := make([]*big.Rat, d)
	for j := range p {
		p[j] = new(big.Rat)
	}
	for i, pc := range pivots {
		p[pc] = new(big.Rat).Set(red.At(i, d))
	}

	return &CoordChange{D: d, K: k, M: M, Minv: Minv, P: p}, nil
}

// Transform re-expresses g (length 1+D) in the reduced (D-K)-dimensional
// coordinate system, dropping the first K (now-zero) coordinates. g is
// assumed to have been evaluated on the slice where the K eliminated
// equalities hold.
func (cc *CoordChange) Transform(g ratio.Form) (ratio.Form, error) {
	normal := make([]*big.Rat, cc.D)
	for j := 1; j <= cc.D; j++ {
		normal[j-1] = new(big.Rat).SetInt(g.Coeff(j))
	}
	zFull, err := VecMulRow(normal, cc.Minv)
	if err != nil {
		return nil, err
	}
	newConst := new(big.Rat).SetInt(g.Const())
	newConst.Add(newConst, dot(normal, cc.P))

	return ratToIntForm(newConst, zFull[cc.K:])
}

// Preimage lifts h (length 1+(D-K), expressed in the reduced coordinates)
// back to the original D-dimensional space, padding the K dropped
// coordinates with zero.
func (cc *CoordChange) Preimage(h ratio.Form) (ratio.Form, error) {
	zFull := make([]*big.Rat, cc.D)
	for j := 0; j < cc.K; j++ {
		zFull[j] = new(big.Rat)
	}
	for j := cc.K; j < cc.D; j++ {
		zFull[j] = new(big.Rat).SetInt(h.Coeff(j - cc.K + 1))
	}
	xNormal, err := VecMulRow(zFull, cc.M)
	if err != nil {
		return nil, err
	}
	newConst := new(big.Rat).SetInt(h.Const())
	newConst.Sub(newConst, dot(xNormal, cc.P))

	return ratToIntForm(newConst, xNormal)
}

func dot(a, b []*big.Rat) *big.Rat {
	sum := new(big.Rat)
	for i := range a {
		t := new(big.Rat).Mul(a[i], b[i])
		sum.Add(sum, t)
	}
	return sum
}

// ratToIntForm clears denominators of [const, coeffs...] by their common
// denominator and returns the resulting integer Form, gcd-reduced.
func ratToIntForm(c *big.Rat, coeffs []*big.Rat) (ratio.Form, error) {
	all := append([]*big.Rat{c}, coeffs...)
	den := big.NewInt(1)
	for _, v := range all {
		den = lcm(den, v.Denom())
	}
	f := make(ratio.Form, len(all))
	for i, v := range all {
		n := new(big.Int).Mul(v.Num(), new(big.Int).Div(den, v.Denom()))
		f[i] = n
	}
	return ratio.Form(f).Normalize(), nil
}

func lcm(a, b *big.Int) *big.Int {
	if a.Sign() == 0 {
		return new(big.Int).Set(b)
	}
	if b.Sign() == 0 {
		return new(big.Int).Set(a)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b))
	l := new(big.Int).Div(a, g)
	l.Mul(l, b)
	return new(big.Int).Abs(l)
}

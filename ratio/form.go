package ratio

import (
	"fmt"
	"math/big"
	"strings"
)

// Form is a linear form of length 1+d: Form[0] is the constant term c0,
// Form[1..d] are the coefficients of x1..xd. Depending on context a Form
// is read as an equality "= 0" or an inequality "≥ 0".
//
// Forms are stored with integer coefficients (spec: "linear equalities and
// inequalities over integer coefficients"); rational scalars only appear as
// the result of evaluating a Form at a rational point, or inside the LP/
// elimination machinery in matkit, tableau and lpsolve.
type Form []*big.Int

// NewForm returns the all-zero form over dimension d (length 1+d).
func NewForm(d int) Form {
	f := make(Form, d+1)
	for i := range f {
		f[i] = new(big.Int)
	}
	return f
}

// FromInts builds a Form from plain int64 coefficients, constant term first.
func FromInts(cs ...int64) Form {
	f := make(Form, len(cs))
	for i, c := range cs {
		f[i] = big.NewInt(c)
	}
	return f
}

// Dim returns the ambient dimension d (len(f)-1).
func (f Form) Dim() int {
	if len(f) == 0 {
		return 0
	}
	return len(f) - 1
}

// Const returns the constant term c0.
func (f Form) Const() *big.Int {
	return f[0]
}

// Coeff returns the coefficient of x_i, 1 ≤ i ≤ Dim().
func (f Form) Coeff(i int) *big.Int {
	return f[i]
}

// Clone returns a deep copy of f.
func (f Form) Clone() Form {
	g := make(Form, len(f))
	for i, c := range f {
		g[i] = new(big.Int).Set(c)
	}
	return g
}

// IsZero reports whether every coefficient, including the constant, is 0.
func (f Form) IsZero() bool {
	for _, c := range f {
		if c.Sign() != 0 {
			return false
		}
	}
	return true
}

// NormalIsZero reports whether the non-constant part (the normal vector) of
// f is the zero vector; used to detect degenerate rows produced by
// elimination.
func (f Form) NormalIsZero() bool {
	for i := 1; i < len(f); i++ {
		if f[i].Sign() != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether f and g are identical coefficient-for-coefficient.
// Used by the facet extension loop (spec §4.9) to deduplicate facets: "equal
// bit-for-bit to any existing facet".
func (f Form) Equal(g Form) bool {
	if len(f) != len(g) {
		return false
	}
	for i := range f {
		if f[i].Cmp(g[i]) != 0 {
			return false
		}
	}
	return true
}

// Negate returns -f.
func (f Form) Negate() Form {
	g := make(Form, len(f))
	for i, c := range f {
		g[i] = new(big.Int).Neg(c)
	}
	return g
}

// Scale returns k*f. Per spec, scaling a linear form by a positive integer
// does not change its semantics as an equality/inequality; Scale is used to
// clear a denominator when building a bounding inequality (hull's
// buildBoundForm).
func (f Form) Scale(k *big.Int) Form {
	g := make(Form, len(f))
	for i, c := range f {
		g[i] = new(big.Int).Mul(c, k)
	}
	return g
}

// Combine returns a*f + b*g (coefficient-wise), both scaled by integers a, b.
// This is the single-row integer linear-combination primitive used by
// Fourier-Motzkin elimination and Gaussian elimination throughout the module
// (spec §6 "Seq kit: integer linear-combination and elimination on a single
// row").
func Combine(a *big.Int, f Form, b *big.Int, g Form) (Form, error) {
	if len(f) != len(g) {
		return nil, ErrLengthMismatch
	}
	h := make(Form, len(f))
	for i := range f {
		t1 := new(big.Int).Mul(a, f[i])
		t2 := new(big.Int).Mul(b, g[i])
		h[i] = t1.Add(t1, t2)
	}
	return h, nil
}

// Normalize divides f by the gcd of its coefficients (the constant term
// included), preserving sign, so that two proportional forms compare equal
// via Equal. The zero form is returned unchanged.
func (f Form) Normalize() Form {
	g := gcdAll(f)
	if g == nil || g.Sign() == 0 || g.Cmp(big.NewInt(1)) == 0 {
		return f.Clone()
	}
	out := make(Form, len(f))
	for i, c := range f {
		q := new(big.Int)
		q.Div(c, g)
		out[i] = q
	}
	return out
}

// NormalizeSign additionally fixes the sign of an equality form so that its
// first nonzero coefficient (scanning from the normal part, then the
// constant) is positive; this makes two equalities that are negatives of
// each other compare equal after Normalize, which Normalize alone does not
// guarantee since gcd is always taken positive but sign is preserved.
func (f Form) NormalizeSign() Form {
	n := f.Normalize()
	for i := 1; i < len(n); i++ {
		if s := n[i].Sign(); s != 0 {
			if s < 0 {
				return n.Negate()
			}
			return n
		}
	}
	if n[0].Sign() < 0 {
		return n.Negate()
	}
	return n
}

func gcdAll(f Form) *big.Int {
	g := new(big.Int)
	for _, c := range f {
		if c.Sign() == 0 {
			continue
		}
		abs := new(big.Int).Abs(c)
		if g.Sign() == 0 {
			g.Set(abs)
		} else {
			g.GCD(nil, nil, g, abs)
		}
	}
	return g
}

// EvalRat evaluates f at a rational point x (length Dim()), returning
// c0 + sum ci*xi as a *big.Rat.
func (f Form) EvalRat(x []*big.Rat) *big.Rat {
	sum := new(big.Rat).SetInt(f[0])
	for i := 1; i < len(f); i++ {
		term := new(big.Rat).SetInt(f[i])
		term.Mul(term, x[i-1])
		sum.Add(sum, term)
	}
	return sum
}

// String renders f as "c0 + c1 x1 + c2 x2 + ...".
func (f Form) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s", f[0].String())
	for i := 1; i < len(f); i++ {
		fmt.Fprintf(&b, " + %s x%d", f[i].String(), i)
	}
	return b.String()
}

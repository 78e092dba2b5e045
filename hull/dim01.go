package hull

import (
	"math/big"

	"github.com/presburger/uhull/poly"
	"github.com/presburger/uhull/ratio"
)

// Hull0D returns the 0-dimensional hull of u: EMPTY if u has no points,
// else the (unique, point-like) universe of dimension 0 (spec §4.3).
func Hull0D(u poly.Union) poly.Polyhedron {
	if u.IsEmpty() {
		return poly.EmptySet(0)
	}
	return poly.Universe(0)
}

// Hull1D computes the closed-form hull of a 1-dimensional union (spec
// §4.2): the tightest lower and upper bound on x1 across the whole union,
// where a member lacking a bound of one kind kills that global bound
// entirely (the union is unbounded on that side).
func Hull1D(u poly.Union) (poly.Polyhedron, error) {
	if u.IsEmpty() {
		return poly.EmptySet(1), nil
	}
	members := u.NonEmptyMembers()

	haveLower, haveUpper := true, true
	var globalLower, globalUpper *big.Rat

	for _, m := range members {
		lo, loOk, hi, hiOk := member1DBounds(m)
		if haveLower {
			if !loOk {
				haveLower = false
			} else if globalLower == nil || lo.Cmp(globalLower) < 0 {
				globalLower = lo
			}
		}
		if haveUpper {
			if !hiOk {
				haveUpper = false
			} else if globalUpper == nil || hi.Cmp(globalUpper) > 0 {
				globalUpper = hi
			}
		}
	}

	out := poly.Polyhedron{Dim: 1, Flags: poly.Rational}
	if haveLower {
		out.Ineqs = append(out.Ineqs, thresholdIneq(globalLower, true))
	}
	if haveUpper {
		out.Ineqs = append(out.Ineqs, thresholdIneq(globalUpper, false))
	}
	return PolyhedronConvexHull(out)
}

// member1DBounds returns the tightest lower/upper threshold implied by a
// single member's own constraints (a conjunction: the tightest, i.e. most
// restrictive, bound of each kind wins). An equality pins both bounds to
// the same point regardless of the sign of its x1 coefficient.
func member1DBounds(m poly.Polyhedron) (lo *big.Rat, loOk bool, hi *big.Rat, hiOk bool) {
	consider := func(f ratio.Form, isEq bool) {
		c1 := f.Coeff(1)
		if c1.Sign() == 0 {
			return
		}
		t := threshold1D(f)
		if isEq || c1.Sign() > 0 {
			if !loOk || t.Cmp(lo) > 0 {
				lo, loOk = t, true
			}
		}
		if isEq || c1.Sign() < 0 {
			if !hiOk || t.Cmp(hi) < 0 {
				hi, hiOk = t, true
			}
		}
	}
	for _, e := range m.Eqs {
		consider(e, true)
	}
	for _, ineq := range m.Ineqs {
		consider(ineq, false)
	}
	return
}

// threshold1D returns x0 = -c0/c1, the boundary point of the half-line (or
// hyperplane) described by a dimension-1 form c0 + c1*x >= 0 or = 0.
func threshold1D(f ratio.Form) *big.Rat {
	num := new(big.Int).Neg(f.Const())
	return new(big.Rat).SetFrac(num, f.Coeff(1))
}

// thresholdIneq builds "x - t >= 0" (lower bound) or "t - x >= 0" (upper
// bound) for a rational threshold t = p/q, q > 0.
func thresholdIneq(t *big.Rat, isLower bool) ratio.Form {
	p := new(big.Int).Set(t.Num())
	q := new(big.Int).Set(t.Denom())
	if isLower {
		return ratio.Form{new(big.Int).Neg(p), q}
	}
	return ratio.Form{p, new(big.Int).Neg(q)}
}

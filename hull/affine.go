package hull

import (
	"math/big"

	"github.com/presburger/uhull/lpsolve"
	"github.com/presburger/uhull/matkit"
	"github.com/presburger/uhull/poly"
	"github.com/presburger/uhull/ratio"
)

// AffineHull returns the minimal set of equalities satisfied by every point
// of u: the implicit equalities of the smallest affine subspace containing
// the whole union (spec §6 "Affine hull on a union"; used by the top-level
// dispatcher's §4.11 step 4).
//
// A linear form vanishes on the whole union iff it vanishes on every
// member; since a C4-reduced member (NoImplicit) is full-dimensional
// within its own affine hull, a form vanishes on that member iff it is a
// linear combination of the member's own equalities. So the candidate
// space starts as the first member's equality span and is narrowed, one
// member at a time, to the subspace of combinations that also vanish on
// each subsequent member (via a coordinate change onto that member's
// affine hull, spec §4.7's right-inverse/preimage machinery reused here
// for a null-space test instead of dimension reduction).
func AffineHull(u poly.Union) ([]ratio.Form, error) {
	members := u.NonEmptyMembers()
	if len(members) == 0 {
		return nil, nil
	}
	first, err := PolyhedronConvexHull(members[0])
	if err != nil {
		return nil, err
	}
	candidates := first.Eqs
	for _, m := range members[1:] {
		if len(candidates) == 0 {
			break
		}
		reduced, err := PolyhedronConvexHull(m)
		if err != nil {
			return nil, err
		}
		candidates, err = restrictToVanishing(candidates, reduced)
		if err != nil {
			return nil, err
		}
	}
	return candidates, nil
}

// restrictToVanishing narrows candidates (a spanning set of linear forms,
// each identically zero on every prior member) to the subspace of
// combinations that also vanish identically on m.
func restrictToVanishing(candidates []ratio.Form, m poly.Polyhedron) ([]ratio.Form, error) {
	if len(m.Eqs) == 0 {
		// m is full-dimensional; only the zero functional vanishes on it.
		return nil, nil
	}
	cc, err := matkit.NewCoordChange(m.Eqs)
	if err != nil {
		return nil, ErrFatal
	}
	k := len(candidates)
	h := make([]ratio.Form, k)
	for i, c := range candidates {
		tr, err := cc.Transform(c)
		if err != nil {
			return nil, ErrFatal
		}
		h[i] = tr
	}
	lambdas, err := leftNullSpace(h)
	if err != nil {
		return nil, err
	}
	out := make([]ratio.Form, 0, len(lambdas))
	for _, lam := range lambdas {
		combo, err := combineForms(lam, candidates)
		if err != nil {
			return nil, err
		}
		if !combo.IsZero() {
			out = append(out, combo)
		}
	}
	return canonicalizeSpan(out)
}

// leftNullSpace returns a basis {lambda in Q^k} of {lambda : sum_j lambda_j
// * rows[j] = 0}, rows each of length n.
func leftNullSpace(rows []ratio.Form) ([][]*big.Rat, error) {
	k := len(rows)
	if k == 0 {
		return nil, nil
	}
	n := rows[0].Dim() + 1
	// M is n x k: column j holds rows[j] (so M*lambda = sum_j lambda_j*rows[j]).
	m, err := matkit.New(n, k)
	if err != nil {
		return nil, ErrFatal
	}
	for j, r := range rows {
		for i := 0; i < n; i++ {
			var v *big.Rat
			if i == 0 {
				v = new(big.Rat).SetInt(r.Const())
			} else {
				v = new(big.Rat).SetInt(r.Coeff(i))
			}
			m.Set(i, j, v)
		}
	}
	red, pivots := matkit.RREF(m)
	pivotCols := make(map[int]bool, len(pivots))
	for _, p := range pivots {
		pivotCols[p] = true
	}
	var basis [][]*big.Rat
	for free := 0; free < k; free++ {
		if pivotCols[free] {
			continue
		}
		lam := make([]*big.Rat, k)
		for i := range lam {
			lam[i] = new(big.Rat)
		}
		lam[free] = big.NewRat(1, 1)
		for i, p := range pivots {
			lam[p] = new(big.Rat).Neg(red.At(i, free))
		}
		basis = append(basis, lam)
	}
	return basis, nil
}

// combineForms returns sum lam[j]*forms[j] as an integer Form.
func combineForms(lam []*big.Rat, forms []ratio.Form) (ratio.Form, error) {
	n := forms[0].Dim() + 1
	acc := make([]*big.Rat, n)
	for i := range acc {
		acc[i] = new(big.Rat)
	}
	for j, f := range forms {
		if lam[j].Sign() == 0 {
			continue
		}
		for i := 0; i < n; i++ {
			var c *big.Int
			if i == 0 {
				c = f.Const()
			} else {
				c = f.Coeff(i)
			}
			t := new(big.Rat).Mul(lam[j], new(big.Rat).SetInt(c))
			acc[i].Add(acc[i], t)
		}
	}
	return ratRowToForm(acc), nil
}

// canonicalizeSpan reduces a spanning set of equalities to an independent
// basis in canonical (RREF) form, reusing the same kernel as C4's equality
// canonicalisation.
func canonicalizeSpan(forms []ratio.Form) ([]ratio.Form, error) {
	if len(forms) == 0 {
		return nil, nil
	}
	d := forms[0].Dim()
	out, isEmpty, err := canonicalizeEqs(forms, d)
	if err != nil {
		return nil, err
	}
	if isEmpty {
		// A spanning set of a union's vanishing equalities cannot be
		// contradictory (the union is non-empty by construction).
		return nil, ErrFatal
	}
	return out, nil
}

// IsBounded reports whether u is bounded: every non-empty member is
// bounded in every coordinate direction, both ways (spec §4.11 step 5's
// "recession cone non-trivial" test, phrased via the LP oracle rather than
// an explicit cone computation: a convex set has a non-trivial recession
// direction iff some coordinate is unbounded in it).
func IsBounded(u poly.Union) (bool, error) {
	for _, m := range u.NonEmptyMembers() {
		for axis := 1; axis <= u.Dim; axis++ {
			for _, sign := range []int64{1, -1} {
				obj := axisForm(u.Dim, axis, sign)
				res, err := lpsolve.Minimize(m, obj)
				if err != nil {
					return false, ErrFatal
				}
				if res.Status == lpsolve.StatusUnbounded {
					return false, nil
				}
			}
		}
	}
	return true, nil
}

func axisForm(d, axis int, sign int64) ratio.Form {
	f := ratio.NewForm(d)
	f[axis] = big.NewInt(sign)
	return f
}

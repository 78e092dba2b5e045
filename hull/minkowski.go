package hull

import (
	"math/big"
	"sort"

	"github.com/presburger/uhull/poly"
	"github.com/presburger/uhull/ratio"
)

// PairwiseFMHull computes the convex hull of p1 ∪ p2 (dimension d each) as
// their Minkowski sum in homogeneous coordinates (spec §4.4, component C6).
//
// A fresh polyhedron is built over 3*(1+d) variables grouped into three
// blocks of 1+d each: z (the homogeneous image of the result), y1 and y2
// (the homogeneous images of p1 and p2). Each pᵢ's constraints are placed
// into the yᵢ block, its homogenising coordinate is constrained
// non-negative, and z is tied to y1+y2 coordinate-wise. Eliminating y1 and
// y2 by Fourier-Motzkin leaves the homogeneous cone of the Minkowski sum;
// fixing its leading (t) coordinate to 1 and eliminating it recovers the
// ordinary d-dimensional hull, which is then reduced via C4.
func PairwiseFMHull(p1, p2 poly.Polyhedron) (poly.Polyhedron, error) {
	d := p1.Dim
	if p2.Dim != d {
		return poly.Polyhedron{}, ErrDimensionMismatch
	}
	if p1.IsEmpty() {
		return PolyhedronConvexHull(p2)
	}
	if p2.IsEmpty() {
		return PolyhedronConvexHull(p1)
	}

	total := 3 * (d + 1)
	zStart, y1Start, y2Start := 1, d+2, 2*d+3

	var eqs, ineqs []ratio.Form
	for _, e := range p1.Eqs {
		eqs = append(eqs, embedBlock(e, y1Start, total))
	}
	for _, c := range p1.Ineqs {
		ineqs = append(ineqs, embedBlock(c, y1Start, total))
	}
	for _, e := range p2.Eqs {
		eqs = append(eqs, embedBlock(e, y2Start, total))
	}
	for _, c := range p2.Ineqs {
		ineqs = append(ineqs, embedBlock(c, y2Start, total))
	}
	ineqs = append(ineqs, unitAt(y1Start, total), unitAt(y2Start, total))
	for j := 0; j <= d; j++ {
		eqs = append(eqs, sumEquality(zStart+j, y1Start+j, y2Start+j, total))
	}

	w := poly.Polyhedron{Dim: total, Eqs: eqs, Ineqs: ineqs, Flags: poly.Rational}

	// Eliminate y2 then y1, highest-indexed coordinates first so lower
	// indices (the z block) never shift under us.
	var toEliminate []int
	for v := y2Start + d; v >= y2Start; v-- {
		toEliminate = append(toEliminate, v)
	}
	for v := y1Start + d; v >= y1Start; v-- {
		toEliminate = append(toEliminate, v)
	}
	proj, err := eliminateVars(w, toEliminate)
	if err != nil {
		return poly.Polyhedron{}, err
	}

	// proj has dimension d+1, variables (t_z, x_z,1..d). Fix t_z = 1 and
	// eliminate it to recover the ordinary d-dimensional hull.
	fixT := ratio.Form{big.NewInt(-1), big.NewInt(1)}
	for k := 0; k < d; k++ {
		fixT = append(fixT, big.NewInt(0))
	}
	proj = proj.WithEqs(fixT)
	out, err := eliminateVars(proj, []int{1})
	if err != nil {
		return poly.Polyhedron{}, err
	}
	return PolyhedronConvexHull(out)
}

// IteratedFMHull folds PairwiseFMHull across u's non-empty members (spec
// §4.5); member order does not affect the result.
func IteratedFMHull(u poly.Union) (poly.Polyhedron, error) {
	members := u.NonEmptyMembers()
	if len(members) == 0 {
		return poly.EmptySet(u.Dim), nil
	}
	acc := members[0]
	for _, m := range members[1:] {
		var err error
		acc, err = PairwiseFMHull(acc, m)
		if err != nil {
			return poly.Polyhedron{}, err
		}
	}
	return PolyhedronConvexHull(acc)
}

// embedBlock places f's homogeneous form (its constant on the block's
// leading "t" coordinate, its normal on the block's remaining coordinates)
// into a Form of length 1+total with a zero global constant.
func embedBlock(f ratio.Form, blockStart, total int) ratio.Form {
	out := ratio.NewForm(total)
	out[blockStart] = new(big.Int).Set(f.Const())
	for k := 1; k <= f.Dim(); k++ {
		out[blockStart+k] = new(big.Int).Set(f.Coeff(k))
	}
	return out
}

// unitAt builds "x_v >= 0" (the homogenising coordinate's non-negativity).
func unitAt(v, total int) ratio.Form {
	f := ratio.NewForm(total)
	f[v] = big.NewInt(1)
	return f
}

// sumEquality builds "z_j - y1_j - y2_j = 0".
func sumEquality(zj, y1j, y2j, total int) ratio.Form {
	f := ratio.NewForm(total)
	f[zj] = big.NewInt(1)
	f[y1j] = big.NewInt(-1)
	f[y2j] = big.NewInt(-1)
	return f
}

// eliminateVars eliminates the 1-indexed coordinates vars from p via
// Fourier-Motzkin (or, where a live equality still mentions the variable,
// via direct substitution), reducing p.Dim by len(vars). vars is processed
// strictly descending so removing a higher coordinate never invalidates
// the index of a not-yet-removed lower one.
func eliminateVars(p poly.Polyhedron, vars []int) (poly.Polyhedron, error) {
	sorted := append([]int(nil), vars...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	cur := p
	for _, v := range sorted {
		cur = eliminateVar(cur, v)
	}
	return cur, nil
}

// eliminateVar removes coordinate v (1-indexed) from p, preferring
// substitution through a live equality (exact, no combinatorial blowup)
// and falling back to classical Fourier-Motzkin pairing of the
// inequalities with opposite sign on v.
func eliminateVar(p poly.Polyhedron, v int) poly.Polyhedron {
	var pivotEq ratio.Form
	havePivot := false
	eqs := make([]ratio.Form, 0, len(p.Eqs))
	for _, eq := range p.Eqs {
		if !havePivot && eq.Coeff(v).Sign() != 0 {
			pivotEq = eq
			havePivot = true
			continue
		}
		eqs = append(eqs, eq)
	}
	ineqs := append([]ratio.Form(nil), p.Ineqs...)

	if havePivot {
		aEq := pivotEq.Coeff(v)
		for i, eq := range eqs {
			eqs[i] = substituteOut(eq, pivotEq, aEq, v)
		}
		for i, ineq := range ineqs {
			ineqs[i] = substituteIneqOut(ineq, pivotEq, aEq, v)
		}
		return poly.Polyhedron{
			Dim:   p.Dim - 1,
			Eqs:   dropCoordAll(eqs, v),
			Ineqs: dropCoordAll(ineqs, v),
			Flags: poly.Rational,
		}
	}

	var pos, neg, zero []ratio.Form
	for _, f := range ineqs {
		switch f.Coeff(v).Sign() {
		case 1:
			pos = append(pos, f)
		case -1:
			neg = append(neg, f)
		default:
			zero = append(zero, f)
		}
	}
	combined := append([]ratio.Form(nil), zero...)
	for _, pf := range pos {
		for _, nf := range neg {
			negAn := new(big.Int).Neg(nf.Coeff(v))
			ap := pf.Coeff(v)
			row, _ := ratio.Combine(negAn, pf, ap, nf)
			combined = append(combined, row)
		}
	}
	return poly.Polyhedron{
		Dim:   p.Dim - 1,
		Eqs:   dropCoordAll(eqs, v),
		Ineqs: dropCoordAll(combined, v),
		Flags: poly.Rational,
	}
}

// substituteOut returns f with its v-coefficient cancelled using pivotEq
// (coefficient aEq at v), via the cross-multiplied combination
// aEq*f - f[v]*pivotEq (no division, coefficient at v becomes exactly 0).
func substituteOut(f, pivotEq ratio.Form, aEq *big.Int, v int) ratio.Form {
	fv := f.Coeff(v)
	if fv.Sign() == 0 {
		return f
	}
	negFv := new(big.Int).Neg(fv)
	out, _ := ratio.Combine(aEq, f, negFv, pivotEq)
	return out
}

// substituteIneqOut is substituteOut's inequality-safe counterpart: scaling
// an inequality by a negative factor flips its direction, so unlike an
// equality substitution the scale applied to f must always be positive.
// It builds |aEq|*f + B*pivotEq with B chosen by aEq's sign so the
// v-coefficient still cancels exactly.
func substituteIneqOut(f, pivotEq ratio.Form, aEq *big.Int, v int) ratio.Form {
	fv := f.Coeff(v)
	if fv.Sign() == 0 {
		return f
	}
	absAEq := new(big.Int).Abs(aEq)
	var b *big.Int
	if aEq.Sign() > 0 {
		b = new(big.Int).Neg(fv)
	} else {
		b = new(big.Int).Set(fv)
	}
	out, _ := ratio.Combine(absAEq, f, b, pivotEq)
	return out
}

// dropCoordAll removes coordinate v (1-indexed) from every form in fs,
// assuming (by construction) that coordinate is already zero there.
func dropCoordAll(fs []ratio.Form, v int) []ratio.Form {
	out := make([]ratio.Form, len(fs))
	for i, f := range fs {
		g := make(ratio.Form, 0, len(f)-1)
		for j, c := range f {
			if j == v {
				continue
			}
			g = append(g, c)
		}
		out[i] = g
	}
	return out
}

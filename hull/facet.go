package hull

import (
	"math/big"

	"github.com/presburger/uhull/lpsolve"
	"github.com/presburger/uhull/matkit"
	"github.com/presburger/uhull/poly"
	"github.com/presburger/uhull/ratio"
)

// WrapFacet rotates facet f about ridge r to the adjacent facet of
// conv(u) (spec §4.8, component C8). f and r must be linearly independent;
// r need not itself be a true ridge constraint, only independent of f (the
// extension loop, C10, supplies a genuine ridge; InitialFacetConstraint,
// C9, supplies another independent bound as a tightening candidate).
//
// Method: build the affine change of variables sending f to the first
// coordinate and r to the second (matkit's right-inverse machinery),
// express every member's constraints in that frame as the "wrapping
// polyhedron" of spec §4.8, and minimize the sum of second coordinates
// over it. An unbounded optimum means f does not rotate in this ridge
// direction (it already only touches the union along a bounded slice);
// a finite optimum n/den yields the new facet den*r - n*f directly in the
// original coordinates, with no back-transform needed.
func WrapFacet(u poly.Union, f, r ratio.Form) (ratio.Form, error) {
	cc, err := orderedFrame(f, r)
	if err != nil {
		return nil, err
	}
	members := u.NonEmptyMembers()
	if len(members) == 0 {
		return f, nil
	}
	d := cc.D

	blockStart := func(i int) int { return i*(d+1) + 1 }
	total := len(members) * (d + 1)

	var eqs, ineqs []ratio.Form
	for i, m := range members {
		as := blockStart(i)
		for _, e := range m.Eqs {
			eqs = append(eqs, embedTransformed(cc, e, as, total))
		}
		for _, c := range m.Ineqs {
			ineqs = append(ineqs, embedTransformed(cc, c, as, total))
		}
		ineqs = append(ineqs, unitAt(as, total)) // a_i >= 0
	}
	sumRow := ratio.NewForm(total)
	sumRow[0] = big.NewInt(-1)
	for i := range members {
		sumRow[blockStart(i)+1] = big.NewInt(1) // x_{i,1}
	}
	eqs = append(eqs, sumRow)

	objective := ratio.NewForm(total)
	for i := range members {
		objective[blockStart(i)+2] = big.NewInt(1) // x_{i,2}
	}

	w := poly.Polyhedron{Dim: total, Eqs: eqs, Ineqs: ineqs, Flags: poly.Rational}
	res, err := lpsolve.Minimize(w, objective)
	if err != nil {
		return nil, ErrFatal
	}
	switch res.Status {
	case lpsolve.StatusUnbounded:
		return f, nil
	case lpsolve.StatusOk:
		val := res.Rat()
		n := new(big.Int).Set(val.Num())
		den := new(big.Int).Set(val.Denom())
		newF, err := ratio.Combine(den, r, new(big.Int).Neg(n), f)
		if err != nil {
			return nil, ErrFatal
		}
		return newF.Normalize(), nil
	default:
		return nil, ErrFatal
	}
}

// orderedFrame builds the coordinate change whose first new coordinate is
// f's own value and whose second is r's own value (spec §4.8: "the affine
// transformation whose inverse maps F to x1=0 and R to x1=0 ∧ x2=0"),
// completed to a full invertible frame by standard basis vectors outside
// their span.
//
// matkit.NewCoordChange cannot be reused here: it row-reduces its input
// equalities, so the equality that ends up as z1 after RREF's ascending
// pivot-column order need not be f -- but the sum-to-1 normalization and
// the objective of the wrapping polyhedron are only meaningful when the
// first transformed coordinate is f's value exactly and the second is r's.
func orderedFrame(f, r ratio.Form) (*matkit.CoordChange, error) {
	d := f.Dim()
	if r.Dim() != d {
		return nil, ErrDimensionMismatch
	}
	rows := make([][]*big.Rat, 0, d)
	rows = append(rows, toRatNormal(f, d), toRatNormal(r, d))

	red0, piv0, ok0 := reduceAgainstBasis(rows[0], nil)
	if !ok0 {
		return nil, ErrFatal
	}
	basis := []basisRow{{row: red0, pivotCol: piv0}}
	red1, piv1, ok1 := reduceAgainstBasis(rows[1], basis)
	if !ok1 {
		return nil, ErrFatal // f, r not linearly independent
	}
	basis = append(basis, basisRow{row: red1, pivotCol: piv1})

	for j := 0; j < d && len(rows) < d; j++ {
		unit := make([]*big.Rat, d)
		for t := range unit {
			unit[t] = new(big.Rat)
		}
		unit[j] = big.NewRat(1, 1)
		red, piv, ok := reduceAgainstBasis(unit, basis)
		if !ok {
			continue
		}
		basis = append(basis, basisRow{row: red, pivotCol: piv})
		rows = append(rows, unit)
	}

	M, err := matkit.New(d, d)
	if err != nil {
		return nil, ErrFatal
	}
	for i, row := range rows {
		if err := M.SetRow(i, row); err != nil {
			return nil, ErrFatal
		}
	}
	Minv, err := matkit.Inverse(M)
	if err != nil {
		return nil, ErrFatal
	}

	rhs := make([]*big.Rat, d)
	rhs[0] = new(big.Rat).Neg(new(big.Rat).SetInt(f.Const()))
	rhs[1] = new(big.Rat).Neg(new(big.Rat).SetInt(r.Const()))
	for i := 2; i < d; i++ {
		rhs[i] = new(big.Rat)
	}
	P, err := matkit.MulVec(Minv, rhs)
	if err != nil {
		return nil, ErrFatal
	}
	return &matkit.CoordChange{D: d, K: 2, M: M, Minv: Minv, P: P}, nil
}

// embedTransformed expresses g (in the original ambient frame) in the
// full d-dimensional frame of cc (not dropping the first K coordinates,
// unlike CoordChange.Transform, since the wrapping polyhedron needs every
// transformed coordinate available as an objective/constraint term), then
// places the result into one member's (a_i, x_i) block.
func embedTransformed(cc *matkit.CoordChange, g ratio.Form, blockStart, total int) ratio.Form {
	normal := make([]*big.Rat, cc.D)
	for j := 1; j <= cc.D; j++ {
		normal[j-1] = new(big.Rat).SetInt(g.Coeff(j))
	}
	zFull, _ := matkit.VecMulRow(normal, cc.Minv)
	newConst := new(big.Rat).SetInt(g.Const())
	newConst.Add(newConst, dotRat(normal, cc.P))

	out := ratio.NewForm(total)
	scaled := ratRowToForm(append([]*big.Rat{newConst}, zFull...))
	out[blockStart] = new(big.Int).Set(scaled[0]) // a_i gets the constant/t coefficient
	for j := 1; j <= cc.D; j++ {
		out[blockStart+j] = new(big.Int).Set(scaled[j])
	}
	return out
}

func dotRat(a, b []*big.Rat) *big.Rat {
	sum := new(big.Rat)
	for i := range a {
		sum.Add(sum, new(big.Rat).Mul(a[i], b[i]))
	}
	return sum
}

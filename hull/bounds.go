package hull

import (
	"math/big"

	"github.com/presburger/uhull/lpsolve"
	"github.com/presburger/uhull/poly"
	"github.com/presburger/uhull/ratio"
)

// IndependentBounds finds a maximal linearly independent set of bounding
// normals of u (spec §4.6, component C7): the direction matrix consumed by
// the initial-facet constructor (C9).
//
// For each constraint of each member, in order, its normal is tested for
// independence against the normals already accepted (reduced-row-echelon
// style: reduce against the current basis by pivot column, a zero result
// means dependent). An independent candidate is kept only if the union is
// bounded in that direction (every member's LP in that direction is
// finite); its constant term is then set so the row actually bounds the
// whole union, not just the member it came from.
//
// The constant uses the minimum over all members of each member's own
// minimum in that direction (not the maximum): the union's infimum in a
// direction is the smallest of its members' individual infima, since the
// union is their set-theoretic OR, and a valid bounding hyperplane must be
// satisfied by every point in every member.
func IndependentBounds(u poly.Union) ([]ratio.Form, error) {
	d := u.Dim
	members := u.NonEmptyMembers()
	if len(members) == 0 || d == 0 {
		return nil, nil
	}
	var basis []basisRow
	bounds := make([]ratio.Form, 0, d)
	for _, member := range members {
		if len(bounds) == d {
			break
		}
		for _, c := range member.AllConstraints() {
			if len(bounds) == d {
				break
			}
			normal := toRatNormal(c, d)
			reduced, pivotCol, indep := reduceAgainstBasis(normal, basis)
			if !indep {
				continue
			}
			candNormal := normalOnlyForm(c, d)
			bounded, minAll, err := unionMinDirection(members, candNormal)
			if err != nil {
				return nil, err
			}
			if !bounded {
				continue
			}
			bounds = append(bounds, buildBoundForm(candNormal, minAll))
			basis = append(basis, basisRow{row: reduced, pivotCol: pivotCol})
		}
	}
	return bounds, nil
}

type basisRow struct {
	row      []*big.Rat
	pivotCol int
}

// reduceAgainstBasis reduces normal (length d) against the accepted basis
// rows (each already pivot-normalized to 1 at its own pivot column),
// reporting the reduced row and its pivot column if nonzero (independent),
// or independent=false if it reduces to the zero vector.
func reduceAgainstBasis(normal []*big.Rat, basis []basisRow) (reduced []*big.Rat, pivotCol int, independent bool) {
	row := append([]*big.Rat(nil), normal...)
	for _, b := range basis {
		factor := row[b.pivotCol]
		if factor.Sign() == 0 {
			continue
		}
		for j := range row {
			t := new(big.Rat).Mul(factor, b.row[j])
			row[j] = new(big.Rat).Sub(row[j], t)
		}
	}
	for j, v := range row {
		if v.Sign() != 0 {
			inv := new(big.Rat).Inv(v)
			for t := range row {
				row[t] = new(big.Rat).Mul(row[t], inv)
			}
			return row, j, true
		}
	}
	return nil, -1, false
}

// unionMinDirection minimizes objective over every member, returning the
// smallest of the per-member minima, or bounded=false if any member is
// unbounded in that direction.
func unionMinDirection(members []poly.Polyhedron, objective ratio.Form) (bounded bool, minAll *big.Rat, err error) {
	for _, m := range members {
		res, err := lpsolve.Minimize(m, objective)
		if err != nil {
			return false, nil, ErrFatal
		}
		switch res.Status {
		case lpsolve.StatusUnbounded:
			return false, nil, nil
		case lpsolve.StatusOk:
			v := res.Rat()
			if minAll == nil || v.Cmp(minAll) < 0 {
				minAll = v
			}
		}
	}
	if minAll == nil {
		return false, nil, nil
	}
	return true, minAll, nil
}

func toRatNormal(c ratio.Form, d int) []*big.Rat {
	out := make([]*big.Rat, d)
	for i := 1; i <= d; i++ {
		out[i-1] = new(big.Rat).SetInt(c.Coeff(i))
	}
	return out
}

func normalOnlyForm(c ratio.Form, d int) ratio.Form {
	f := ratio.NewForm(d)
	for i := 1; i <= d; i++ {
		f[i] = new(big.Int).Set(c.Coeff(i))
	}
	return f
}

// buildBoundForm scales normal (whose constant term is 0) by minAll's
// denominator so the resulting form has integer coefficients, setting the
// constant to -numerator (scaling a form by a positive integer does not
// change the half-space it describes).
func buildBoundForm(normal ratio.Form, minAll *big.Rat) ratio.Form {
	q := new(big.Int).Set(minAll.Denom())
	p := new(big.Int).Set(minAll.Num())
	scaled := normal.Scale(q)
	scaled[0] = new(big.Int).Neg(p)
	return scaled.Normalize()
}

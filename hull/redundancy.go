package hull

import (
	"math/big"

	"github.com/presburger/uhull/lpsolve"
	"github.com/presburger/uhull/matkit"
	"github.com/presburger/uhull/poly"
	"github.com/presburger/uhull/ratio"
	"github.com/presburger/uhull/tableau"
)

// PolyhedronConvexHull reduces p to minimal constraint form: equal as a
// point set, flagged NoRedundant and NoImplicit, every redundant
// inequality removed and every implicit equality promoted (spec §4.1,
// component C4).
func PolyhedronConvexHull(p poly.Polyhedron) (poly.Polyhedron, error) {
	if p.IsEmpty() {
		return p, nil
	}

	// (a) Canonicalise equalities by Gaussian elimination.
	canonEqs, isEmpty, err := canonicalizeEqs(p.Eqs, p.Dim)
	if err != nil {
		return poly.Polyhedron{}, err
	}
	if isEmpty {
		return poly.EmptySet(p.Dim), nil
	}
	cur := poly.Polyhedron{Dim: p.Dim, Eqs: canonEqs, Ineqs: p.Ineqs, Flags: p.Flags}
	cur = cur.DedupIneqs()

	// Equality canonicalisation alone only catches equality-only
	// contradictions; a feasibility probe against the zero objective also
	// catches inequalities that jointly admit no point (spec §4.1 failure
	// clause: "LP empty on the ambient P -> mark P empty").
	if empty, err := ambientEmpty(cur); err != nil {
		return poly.Polyhedron{}, err
	} else if empty {
		return poly.EmptySet(p.Dim), nil
	}

	// (b) Nothing to eliminate with at most one inequality.
	if len(cur.Ineqs) <= 1 {
		cur.Flags = cur.Flags.Without(poly.Empty).With(poly.NoRedundant | poly.NoImplicit)
		return cur, nil
	}

	// (c)/(d) Detect implicit equalities and promote them.
	tb := tableau.FromPolyhedron(cur)
	isEq, err := tb.DetectEqualities()
	if err != nil {
		return poly.Polyhedron{}, ErrFatal
	}
	promoted := make([]ratio.Form, 0)
	remaining := make([]ratio.Form, 0, len(cur.Ineqs))
	for i, ineq := range cur.Ineqs {
		if isEq[i] {
			promoted = append(promoted, ineq)
		} else {
			remaining = append(remaining, ineq)
		}
	}
	if len(promoted) > 0 {
		allEqs := append(append([]ratio.Form(nil), cur.Eqs...), promoted...)
		canonEqs, isEmpty, err = canonicalizeEqs(allEqs, p.Dim)
		if err != nil {
			return poly.Polyhedron{}, err
		}
		if isEmpty {
			return poly.EmptySet(p.Dim), nil
		}
		cur = poly.Polyhedron{Dim: p.Dim, Eqs: canonEqs, Ineqs: remaining, Flags: cur.Flags}
		cur = cur.DedupIneqs()
	}

	if len(cur.Ineqs) <= 1 {
		cur.Flags = cur.Flags.Without(poly.Empty).With(poly.NoRedundant | poly.NoImplicit)
		return cur, nil
	}

	// (e) Detect and drop redundant inequalities.
	tb = tableau.FromPolyhedron(cur)
	live := make([]bool, len(cur.Ineqs))
	for i := range live {
		live[i] = true
	}
	redundant, err := tb.DetectRedundant(live)
	if err != nil {
		return poly.Polyhedron{}, ErrFatal
	}
	kept := make([]ratio.Form, 0, len(cur.Ineqs))
	for i, ineq := range cur.Ineqs {
		if !redundant[i] {
			kept = append(kept, ineq)
		}
	}
	cur.Ineqs = kept

	// (f) Materialise: set flags.
	cur.Flags = cur.Flags.Without(poly.Empty).With(poly.NoRedundant | poly.NoImplicit)
	return cur, nil
}

// canonicalizeEqs reduces eqs to a linearly independent set via RREF over
// columns [c1..cd, c0], reporting isEmpty when a row reduces to "0 = k" for
// k != 0 (a contradiction). Rows that reduce to the zero row are dropped as
// vacuous.
func canonicalizeEqs(eqs []ratio.Form, d int) (out []ratio.Form, isEmpty bool, err error) {
	if len(eqs) == 0 {
		return nil, false, nil
	}
	m, err := matkit.New(len(eqs), d+1)
	if err != nil {
		return nil, false, err
	}
	for i, e := range eqs {
		for j := 1; j <= d; j++ {
			m.Set(i, j-1, new(big.Rat).SetInt(e.Coeff(j)))
		}
		m.Set(i, d, new(big.Rat).SetInt(e.Const()))
	}
	red, pivots := matkit.RREF(m)
	pivotSet := make(map[int]bool, len(pivots))
	for _, pc := range pivots {
		if pc == d {
			return nil, true, nil
		}
		pivotSet[pc] = true
	}
	out = make([]ratio.Form, 0, len(pivots))
	for i := range pivots {
		row := red.Row(i)
		// Reorder [c1..cd, c0] -> [c0, c1..cd] before clearing denominators.
		reordered := make([]*big.Rat, d+1)
		reordered[0] = row[d]
		copy(reordered[1:], row[:d])
		if allZero(reordered) {
			continue
		}
		out = append(out, ratRowToForm(reordered))
	}
	return out, false, nil
}

// ambientEmpty probes feasibility of p via the zero objective: the LP
// returns StatusEmpty iff p admits no point at all.
func ambientEmpty(p poly.Polyhedron) (bool, error) {
	res, err := lpsolve.Minimize(p, ratio.NewForm(p.Dim))
	if err != nil {
		return false, ErrFatal
	}
	return res.Status == lpsolve.StatusEmpty, nil
}

func allZero(row []*big.Rat) bool {
	for _, v := range row {
		if v.Sign() != 0 {
			return false
		}
	}
	return true
}

// ratRowToForm clears denominators of a rational row by their LCM and
// gcd-normalizes the resulting integer form.
func ratRowToForm(row []*big.Rat) ratio.Form {
	den := big.NewInt(1)
	for _, v := range row {
		den = lcmInt(den, v.Denom())
	}
	f := make(ratio.Form, len(row))
	for i, v := range row {
		n := new(big.Int).Mul(v.Num(), new(big.Int).Div(den, v.Denom()))
		f[i] = n
	}
	return f.Normalize()
}

func lcmInt(a, b *big.Int) *big.Int {
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

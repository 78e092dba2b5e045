package tableau

import (
	"math/big"

	"github.com/presburger/uhull/lpsolve"
	"github.com/presburger/uhull/poly"
	"github.com/presburger/uhull/ratio"
)

// Tableau wraps a single polyhedron for the two queries spec §4.1 needs.
// The name and the FromPolyhedron/DetectEqualities/DetectRedundant split
// mirror spec §6's contract naming (tab_from_polyhedron, detect_equalities,
// detect_redundant) even though the implementation defers to lpsolve.
type Tableau struct {
	P poly.Polyhedron
}

// FromPolyhedron builds a Tableau over p (spec's tab_from_polyhedron).
func FromPolyhedron(p poly.Polyhedron) *Tableau {
	return &Tableau{P: p}
}

// DetectEqualities returns, for each inequality of t.P in order, whether it
// is implicitly an equality: its minimum over P is 0 and its maximum is
// also 0 (spec §4.1 step d).
func (t *Tableau) DetectEqualities() ([]bool, error) {
	out := make([]bool, len(t.P.Ineqs))
	for i, c := range t.P.Ineqs {
		minOk, minVal, err := t.minimize(c)
		if err != nil {
			return nil, err
		}
		// The LP ignores c's constant term: c is 0 at the minimum iff the
		// minimum of its normal part is -c0, and 0 at the maximum iff the
		// minimum of the negated normal part is c0.
		negC0 := new(big.Rat).Neg(new(big.Rat).SetInt(c.Const()))
		if !minOk || minVal.Cmp(negC0) != 0 {
			continue
		}
		maxOk, maxVal, err := t.minimize(c.Negate())
		if err != nil {
			return nil, err
		}
		if maxOk && maxVal.Cmp(new(big.Rat).SetInt(c.Const())) == 0 {
			out[i] = true
		}
	}
	return out, nil
}

// DetectRedundant returns, for each inequality of t.P in order, whether it
// is redundant: removing it does not change the point set (spec §4.1 step
// e). live marks which inequalities are still considered part of P; a
// redundant candidate has its live entry cleared immediately, so later
// candidates in the same call are tested against the already-shrunk set
// rather than the original one (two mutually-redundant-looking constraints
// can otherwise both pass a one-shot test against the full set even though
// dropping both would change the polyhedron).
func (t *Tableau) DetectRedundant(live []bool) ([]bool, error) {
	redundant := make([]bool, len(t.P.Ineqs))
	for i, c := range t.P.Ineqs {
		if !live[i] {
			continue
		}
		if !mayBeRedundant(t.P, live, i) {
			continue
		}
		without := withoutLive(t.P, live, i)
		minOk, minVal, err := minimizeOver(without, c)
		if err != nil {
			return nil, err
		}
		if !minOk {
			continue
		}
		// redundant iff min >= -c0
		negC0 := new(big.Rat).Neg(new(big.Rat).SetInt(c.Const()))
		if minVal.Cmp(negC0) >= 0 {
			redundant[i] = true
			live[i] = false
		}
	}
	return redundant, nil
}

func (t *Tableau) minimize(c ratio.Form) (ok bool, val *big.Rat, err error) {
	return minimizeOver(t.P, c)
}

func minimizeOver(p poly.Polyhedron, c ratio.Form) (ok bool, val *big.Rat, err error) {
	res, err := lpsolve.Minimize(p, c)
	if err != nil {
		return false, nil, ErrSolverFailure
	}
	switch res.Status {
	case lpsolve.StatusOk:
		return true, res.Rat(), nil
	case lpsolve.StatusEmpty:
		// An empty ambient polyhedron makes every candidate vacuously
		// redundant/equal; callers short-circuit on poly.Empty before
		// reaching here in practice.
		return false, nil, nil
	default: // unbounded
		return false, nil, nil
	}
}

// mayBeRedundant applies spec §4.1's cheap pre-screen: if some axis i has
// c_i != 0 and no other live inequality shares its sign on that axis, c
// cannot be redundant and the LP can be skipped.
func mayBeRedundant(p poly.Polyhedron, live []bool, idx int) bool {
	c := p.Ineqs[idx]
	for axis := 1; axis <= p.Dim; axis++ {
		sign := c.Coeff(axis).Sign()
		if sign == 0 {
			continue
		}
		found := false
		for j, other := range p.Ineqs {
			if j == idx || !live[j] {
				continue
			}
			if other.Coeff(axis).Sign() == sign {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func withoutLive(p poly.Polyhedron, live []bool, idx int) poly.Polyhedron {
	out := poly.Polyhedron{Dim: p.Dim, Flags: p.Flags, Eqs: p.Eqs}
	out.Ineqs = make([]ratio.Form, 0, len(p.Ineqs))
	for j, ineq := range p.Ineqs {
		if j == idx || !live[j] {
			continue
		}
		out.Ineqs = append(out.Ineqs, ineq)
	}
	return out
}

package lpsolve

import (
	"math/big"

	"github.com/presburger/uhull/poly"
	"github.com/presburger/uhull/ratio"
)

// Minimize finds the minimum of objective over p (spec §6: solve_lp;
// ignores the constant term of objective). Free (unrestricted-sign)
// coordinates are handled internally by the standard x = x+ - x- split.
func Minimize(p poly.Polyhedron, objective ratio.Form) (Result, error) {
	if p.IsEmpty() {
		return Result{Status: StatusEmpty}, nil
	}
	d := p.Dim
	if objective.Dim() != d {
		return Result{}, ErrDimensionMismatch
	}

	m := len(p.Ineqs)
	k := len(p.Eqs)
	n := 2*d + m // structural columns: u(d), v(d), slack(m)
	R := k + m   // one row per constraint, one artificial each
	cols := n + R

	t := newTableau(R, cols)

	setRow := func(row int, form ratio.Form, slackIdx int) {
		for i := 1; i <= d; i++ {
			c := new(big.Rat).SetInt(form.Coeff(i))
			t.data[row][i-1] = new(big.Rat).Set(c)       // u_i
			t.data[row][d+i-1] = new(big.Rat).Neg(c)       // v_i
		}
		if slackIdx >= 0 {
			t.data[row][2*d+slackIdx] = big.NewRat(-1, 1)
		}
		b := new(big.Rat).Neg(new(big.Rat).SetInt(form.Const()))
		if b.Sign() < 0 {
			for j := 0; j < n; j++ {
				t.data[row][j].Neg(t.data[row][j])
			}
			b.Neg(b)
		}
		t.data[row][cols] = b
		art := n + row
		t.data[row][art] = big.NewRat(1, 1)
		t.basis[row] = art
	}

	row := 0
	for _, eq := range p.Eqs {
		setRow(row, eq, -1)
		row++
	}
	for j, ineq := range p.Ineqs {
		setRow(row, ineq, j)
		row++
	}

	// Phase 1: minimize sum of artificials.
	phase1Cost := make([]*big.Rat, cols)
	for j := 0; j < cols; j++ {
		if j >= n {
			phase1Cost[j] = big.NewRat(1, 1)
		} else {
			phase1Cost[j] = new(big.Rat)
		}
	}
	priceOutBasis(t, phase1Cost)

	allowed := make([]bool, cols)
	for j := 0; j < n; j++ {
		allowed[j] = true
	}
	for j := n; j < cols; j++ {
		allowed[j] = true // artificials eligible to leave, not normally re-entered once 0 and driven out
	}

	status, err := runSimplex(t, allowed)
	if err != nil {
		return Result{}, err
	}
	if status == simplexUnbounded {
		// A sum-of-nonnegative-artificials objective is bounded below by
		// zero; this path is unreachable for a well-formed setup.
		return Result{}, ErrSolverFailure
	}

	phase1Obj := phase1ObjectiveValue(t, n, cols)
	if phase1Obj.Sign() > 0 {
		return Result{Status: StatusEmpty}, nil
	}

	// Drive out any residual basic artificial held at zero, if possible,
	// then forbid artificials from phase 2 entirely.
	for i, b := range t.basis {
		if b < n {
			continue
		}
		for j := 0; j < n; j++ {
			if t.at(i, j).Sign() != 0 {
				t.pivot(i, j)
				break
			}
		}
	}
	for j := n; j < cols; j++ {
		allowed[j] = false
	}

	// Phase 2: minimize the real objective over (u, v); slacks cost 0.
	phase2Cost := make([]*big.Rat, cols)
	for j := 0; j < cols; j++ {
		phase2Cost[j] = new(big.Rat)
	}
	for i := 1; i <= d; i++ {
		c := new(big.Rat).SetInt(objective.Coeff(i))
		phase2Cost[i-1] = new(big.Rat).Set(c)
		phase2Cost[d+i-1] = new(big.Rat).Neg(c)
	}
	priceOutBasis(t, phase2Cost)

	status, err = runSimplex(t, allowed)
	if err != nil {
		return Result{}, err
	}
	if status == simplexUnbounded {
		return Result{Status: StatusUnbounded}, nil
	}

	x := t.solution(n)
	value := new(big.Rat)
	for i := 1; i <= d; i++ {
		xi := new(big.Rat).Sub(x[i-1], x[d+i-1])
		c := new(big.Rat).SetInt(objective.Coeff(i))
		value.Add(value, new(big.Rat).Mul(c, xi))
	}
	return okResult(value), nil
}

// priceOutBasis resets t.cost to trueCost and prices out the current basis
// (cost row -= sum_i trueCost[basis[i]] * row_i), the standard way to
// (re)establish reduced costs consistent with trueCost for whatever basis
// is currently installed.
func priceOutBasis(t *tableau, trueCost []*big.Rat) {
	for j := range t.cost {
		t.cost[j] = new(big.Rat).Set(trueCost[j])
	}
	for i, b := range t.basis {
		cb := trueCost[b]
		if cb.Sign() == 0 {
			continue
		}
		for j := 0; j < t.cols; j++ {
			term := new(big.Rat).Mul(cb, t.data[i][j])
			t.cost[j].Sub(t.cost[j], term)
		}
	}
}

// phase1ObjectiveValue sums the current values of the artificial columns,
// i.e. the phase-1 objective at the current (optimal) vertex.
func phase1ObjectiveValue(t *tableau, n, cols int) *big.Rat {
	sum := new(big.Rat)
	for i, b := range t.basis {
		if b >= n {
			sum.Add(sum, t.rhs(i))
		}
	}
	return sum
}

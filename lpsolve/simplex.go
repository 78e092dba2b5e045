package lpsolve

import "math/big"

// maxPivots bounds the number of simplex pivots before giving up with
// ErrSolverFailure. Generous for the modest-dimension polyhedra this module
// targets; Bland's rule guarantees termination in exact arithmetic, so this
// is only a backstop against a programming error, not a tuning knob.
const maxPivots = 10000

// tableau is the full (dense) simplex tableau: rows equality constraints
// Ax = b (always, after phase 1 sets up feasibility), x >= 0. data[i] has
// length cols+1, the last entry the current RHS of row i. cost holds the
// current reduced costs c̄_j for j in [0, cols); basis[i] is the column
// currently basic in row i.
type tableau struct {
	rows, cols int
	data       [][]*big.Rat
	cost       []*big.Rat
	basis      []int
}

func newTableau(rows, cols int) *tableau {
	data := make([][]*big.Rat, rows)
	for i := range data {
		row := make([]*big.Rat, cols+1)
		for j := range row {
			row[j] = new(big.Rat)
		}
		data[i] = row
	}
	cost := make([]*big.Rat, cols)
	for j := range cost {
		cost[j] = new(big.Rat)
	}
	return &tableau{rows: rows, cols: cols, data: data, cost: cost, basis: make([]int, rows)}
}

func (t *tableau) at(i, j int) *big.Rat { return t.data[i][j] }

func (t *tableau) rhs(i int) *big.Rat { return t.data[i][t.cols] }

// pivot performs a standard simplex pivot on (row, col): normalizes row so
// the pivot entry is 1, then eliminates col from every other row and from
// the cost row.
func (t *tableau) pivot(row, col int) {
	pv := new(big.Rat).Set(t.at(row, col))
	inv := new(big.Rat).Inv(pv)
	for j := 0; j <= t.cols; j++ {
		t.data[row][j].Mul(t.data[row][j], inv)
	}
	for i := 0; i < t.rows; i++ {
		if i == row {
			continue
		}
		factor := new(big.Rat).Set(t.at(i, col))
		if factor.Sign() == 0 {
			continue
		}
		for j := 0; j <= t.cols; j++ {
			term := new(big.Rat).Mul(factor, t.data[row][j])
			t.data[i][j].Sub(t.data[i][j], term)
		}
	}
	if cf := t.cost[col]; cf.Sign() != 0 {
		factor := new(big.Rat).Set(cf)
		for j := 0; j < t.cols; j++ {
			term := new(big.Rat).Mul(factor, t.data[row][j])
			t.cost[j].Sub(t.cost[j], term)
		}
	}
	t.basis[row] = col
}

// simplexStatus is the internal pivot-loop verdict (not the oracle Status:
// phase 1 reuses this to detect its own unboundedness, which cannot
// actually happen for a sum-of-artificials objective bounded below by 0,
// but the code path is shared for clarity).
type simplexStatus int

const (
	simplexOptimal simplexStatus = iota
	simplexUnbounded
)

// runSimplex drives primal simplex to optimality using Bland's rule for
// both the entering and leaving variable, restricted to columns where
// allowed[j] is true. Bland's rule is fixed throughout the module so that
// results are reproducible (spec §5).
func runSimplex(t *tableau, allowed []bool) (simplexStatus, error) {
	for iter := 0; iter < maxPivots; iter++ {
		enter := -1
		for j := 0; j < t.cols; j++ {
			if !allowed[j] {
				continue
			}
			if t.cost[j].Sign() < 0 {
				enter = j
				break
			}
		}
		if enter == -1 {
			return simplexOptimal, nil
		}
		leave := -1
		var bestRatio *big.Rat
		for i := 0; i < t.rows; i++ {
			a := t.at(i, enter)
			if a.Sign() <= 0 {
				continue
			}
			ratio := new(big.Rat).Quo(t.rhs(i), a)
			if bestRatio == nil {
				bestRatio, leave = ratio, i
				continue
			}
			cmp := ratio.Cmp(bestRatio)
			if cmp < 0 || (cmp == 0 && t.basis[i] < t.basis[leave]) {
				bestRatio, leave = ratio, i
			}
		}
		if leave == -1 {
			return simplexUnbounded, nil
		}
		t.pivot(leave, enter)
	}
	return simplexOptimal, ErrSolverFailure
}

// solution reads off x_j for j in cols (structural columns), 0 if
// non-basic.
func (t *tableau) solution(n int) []*big.Rat {
	x := make([]*big.Rat, n)
	for j := range x {
		x[j] = new(big.Rat)
	}
	for i, b := range t.basis {
		if b < n {
			x[b] = new(big.Rat).Set(t.rhs(i))
		}
	}
	return x
}

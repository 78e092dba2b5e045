package lpsolve

import "math/big"

// Status is the LP oracle's verdict, per spec §6:
// solve_lp(P, objective, denominator) → {ok(num, den), unbounded, empty, error}.
type Status int

const (
	// StatusOk means the minimum was found and is Num/Den.
	StatusOk Status = iota
	// StatusUnbounded means the objective is unbounded below on P. This is
	// a signal, not an error (spec §7): it drives branching.
	StatusUnbounded
	// StatusEmpty means P itself has no feasible point.
	StatusEmpty
)

// Result is the outcome of Minimize.
type Result struct {
	Status Status
	Num    *big.Int
	Den    *big.Int // always > 0
}

// Rat returns the optimum as a *big.Rat; only meaningful when Status ==
// StatusOk.
func (r Result) Rat() *big.Rat {
	return new(big.Rat).SetFrac(r.Num, r.Den)
}

func okResult(v *big.Rat) Result {
	n := new(big.Int).Set(v.Num())
	d := new(big.Int).Set(v.Denom())
	return Result{Status: StatusOk, Num: n, Den: d}
}

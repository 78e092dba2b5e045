package lpsolve

import "errors"

// ErrSolverFailure is returned when the simplex iteration does not
// terminate within the configured pivot budget; per spec §7 this is a fatal
// error that must propagate, not a status to branch on.
var ErrSolverFailure = errors.New("lpsolve: simplex did not converge")

// ErrDimensionMismatch indicates the objective form's dimension does not
// match the polyhedron's.
var ErrDimensionMismatch = errors.New("lpsolve: dimension mismatch")

package tableau

import "errors"

// ErrSolverFailure propagates a fatal failure from the underlying LP calls.
var ErrSolverFailure = errors.New("tableau: underlying LP solver failed")

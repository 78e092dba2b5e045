package hull

import "errors"

// ErrFatal wraps an unrecoverable failure from a lower layer (LP solver
// error, impossible tableau, malformed matrix) per spec §7's "fatal errors
// ... propagate as a null return".
var ErrFatal = errors.New("hull: fatal error in underlying computation")

// ErrDimensionMismatch indicates member polyhedra of a union, or a union and
// a direction, do not share an ambient dimension.
var ErrDimensionMismatch = errors.New("hull: dimension mismatch")

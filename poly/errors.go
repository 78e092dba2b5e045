package poly

import "errors"

// ErrDimensionMismatch indicates that two polyhedra or forms belonging to
// the same union/operation do not share an ambient dimension.
var ErrDimensionMismatch = errors.New("poly: dimension mismatch")

// ErrEmptyUnion reports a union with no members. No function in this module
// returns it; an empty union is handled as the empty set instead.
var ErrEmptyUnion = errors.New("poly: union has no members")

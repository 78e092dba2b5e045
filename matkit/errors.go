package matkit

import "errors"

// ErrBadShape is returned when requested matrix dimensions are invalid.
var ErrBadShape = errors.New("matkit: invalid shape")

// ErrDimensionMismatch indicates incompatible dimensions between operands.
var ErrDimensionMismatch = errors.New("matkit: dimension mismatch")

// ErrSingular is returned when a matrix expected to be invertible has no
// inverse (zero pivot column during Gauss-Jordan elimination).
var ErrSingular = errors.New("matkit: singular matrix")

// ErrNotFullRowRank is returned by NewCoordChange when the input equalities
// are not linearly independent (or are inconsistent).
var ErrNotFullRowRank = errors.New("matkit: rows are not linearly independent")

// ErrOutOfRange indicates a row or column index outside valid bounds.
var ErrOutOfRange = errors.New("matkit: index out of range")

// Package matkit provides the rational matrix kernels the hull algorithms
// need: dense storage over math/big.Rat (mirroring the flat row-major layout
// of the teacher's matrix.Dense), row reduction, the inverse of a square
// matrix, and the affine coordinate change (inverse + particular solution +
// preimage) used to reduce ambient dimension modulo a set of equalities.
// There is no right-inverse of a non-square matrix: NewCoordChange completes
// the equality rows with unit rows to a square matrix and inverts that.
package matkit

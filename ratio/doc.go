// Package ratio provides the exact-arithmetic primitives the rest of the
// module builds on: linear forms over integer coefficients and the rational
// scalars produced when those forms are combined, eliminated, or evaluated.
//
// A Form is the library's linear form of length 1+d: c0 + c1*x1 + ... + cd*xd,
// stored as an integer vector (big.Int), matching the fact that polyhedra are
// described over integer coefficients. Intermediate computation (elimination,
// LP solving) needs exact fractions; that is math/big.Rat, used directly by
// the matkit, tableau and lpsolve packages rather than reinvented here.
package ratio

// Package lpsolve is the exact-rational LP oracle of spec §6: minimize a
// linear form over one polyhedron, returning an optimum numerator/
// denominator, or an unbounded/empty/error verdict. Everywhere else in the
// module treats this as an external collaborator consumed through Minimize;
// this package is the module's own default implementation of that contract,
// grounded on the two-phase (artificial-variable) simplex structure seen in
// other_examples' convex-lp-simplex.go and GoMILP's subproblem.go, rebuilt
// over math/big.Rat for exactness instead of float64.
//
// Free variables (polyhedron coordinates have no sign restriction) are
// handled by the standard x = x+ - x- split; the module documents and holds
// fixed Bland's pivot rule throughout, so results are reproducible (spec §5).
package lpsolve

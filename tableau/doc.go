// Package tableau implements the two tests spec §4.1 needs to reduce a
// single polyhedron to minimal form: which inequalities are actually
// implicit equalities, and which are redundant. Spec §6 names this a
// distinct contract ("Simplex tableau: tab_from_polyhedron,
// detect_equalities, detect_redundant — used only in §4.1") from the LP
// oracle (C1), but both tests reduce to a handful of calls to the same
// exact-rational minimization, so this package is a thin orchestration
// layer over lpsolve rather than a second independent pivoting engine —
// see DESIGN.md for that consolidation decision.
package tableau

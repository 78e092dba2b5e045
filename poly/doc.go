// Package poly defines the data model of spec §3: polyhedra (conjunctions
// of linear equalities and inequalities over integer coefficients) and
// unions of polyhedra. It intentionally stays free of any solver or
// elimination logic — those live in lpsolve, tableau and hull — so that
// lower layers can depend on poly without a cycle.
//
// Values are copy-on-write in spirit: every exported constructor and
// mutator returns a new value rather than mutating a shared one, mirroring
// the teacher's core.Graph convention of never letting one handle observe
// a mutation committed through another.
package poly

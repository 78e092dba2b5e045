// Package uhull computes convex hulls of finite unions of rational convex
// polyhedra: given a union of basic sets, each described by linear
// equalities and inequalities over integer coefficients, it returns a
// single polyhedron that is the convex hull of their union.
//
// The work is organized bottom-up across subpackages:
//
//	ratio/    — exact integer linear forms, the module's shared currency
//	matkit/   — exact-rational matrix kit: inverse, coordinate change
//	poly/     — the Polyhedron/Union/Map data model
//	lpsolve/  — exact-rational two-phase simplex, the LP oracle
//	tableau/  — simplex tableau used only for redundancy/equality detection
//	hull/     — the hull algorithms themselves: redundancy elimination,
//	            affine-hull factoring, Minkowski-sum via Fourier-Motzkin,
//	            facet wrapping and the breadth-first extension loop
//
// This package re-exports the handful of entry points a caller needs:
// ConvexHull and SimpleHull (on both Union and Map), and
// PolyhedronConvexHull for reducing a single polyhedron to minimal form.
package uhull

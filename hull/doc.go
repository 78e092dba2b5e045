// Package hull implements the convex-hull construction proper: redundancy
// elimination on a single polyhedron (C4), the 0-D/1-D closed forms (C5),
// the Fourier-Motzkin Minkowski-sum hull for unbounded unions (C6), the
// bounded-direction search (C7), facet wrapping (C8), the initial-facet
// constructor (C9), the breadth-first facet extension loop (C10) and the
// top-level dispatcher plus simple_hull (C11). It sits above ratio, matkit,
// poly, lpsolve and tableau and has no further dependents inside this
// module besides the root package's thin external-API wrapper.
package hull

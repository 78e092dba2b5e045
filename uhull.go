package uhull

import (
	"github.com/presburger/uhull/hull"
	"github.com/presburger/uhull/poly"
)

// ConvexHull returns the convex hull of u (spec §6 `convex_hull(S)`): a
// single polyhedron containing every point of every member of u, and no
// more than the intersection of all convex sets that do.
func ConvexHull(u poly.Union) (poly.Polyhedron, error) {
	return hull.ConvexHull(u)
}

// ConvexHullMap returns the convex hull of m's body (spec §6
// `convex_hull(M)`). Parameters are not distinguished from ordinary
// dimensions by the core (poly.Map's own doc comment); the hull is taken
// over the whole body.
func ConvexHullMap(m poly.Map) (poly.Polyhedron, error) {
	return hull.ConvexHull(m.Body)
}

// SimpleHull returns the cheaper over-approximation of spec §6
// `simple_hull`, restricted to facet normals already present in u.
func SimpleHull(u poly.Union) (poly.Polyhedron, error) {
	return hull.SimpleHull(u)
}

// SimpleHullMap is SimpleHull over a map's body.
func SimpleHullMap(m poly.Map) (poly.Polyhedron, error) {
	return hull.SimpleHull(m.Body)
}

// PolyhedronConvexHull reduces a single polyhedron to minimal form: no
// redundant inequalities, no implicit equalities (spec §6
// `polyhedron_convex_hull(P)`).
func PolyhedronConvexHull(p poly.Polyhedron) (poly.Polyhedron, error) {
	return hull.PolyhedronConvexHull(p)
}

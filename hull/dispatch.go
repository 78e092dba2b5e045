package hull

import (
	"github.com/presburger/uhull/matkit"
	"github.com/presburger/uhull/poly"
	"github.com/presburger/uhull/ratio"
)

// USetConvexHull is uset_convex_hull of spec §4.11 step 5: dispatch on a
// union already known to be full-dimensional in its own affine hull
// (ConvexHull strips the affine hull first). It chooses among the closed
// forms (0-D, 1-D, single member), the Minkowski/FM path for an unbounded
// union, or the bounds-basis-and-wrapping path (C7-C10) otherwise.
func USetConvexHull(u poly.Union) (poly.Polyhedron, error) {
	if u.IsEmpty() {
		return poly.EmptySet(u.Dim), nil
	}
	if u.Dim == 0 {
		return Hull0D(u), nil
	}
	if u.Dim == 1 {
		return Hull1D(u)
	}
	members := u.NonEmptyMembers()
	if len(members) == 1 {
		return PolyhedronConvexHull(members[0])
	}
	bounded, err := IsBounded(u)
	if err != nil {
		return poly.Polyhedron{}, err
	}
	if !bounded {
		return IteratedFMHull(u)
	}
	bounds, err := IndependentBounds(u)
	if err != nil {
		return poly.Polyhedron{}, err
	}
	if len(bounds) == 0 {
		// d >= 2 but no bounding direction exists: every axis is
		// unbounded in both signs, already handled above, or the
		// union is a single point-like degenerate case with no
		// inequalities at all; fall back to the Minkowski path, which
		// handles zero-inequality members correctly.
		return IteratedFMHull(u)
	}
	f0, err := InitialFacetConstraint(u, bounds)
	if err != nil {
		return poly.Polyhedron{}, err
	}
	return Extend(u, f0, nil)
}

// ConvexHull is the top-level entry point of spec §4.11: it factors out
// the union's affine hull (working modulo it, per step 4) before handing
// off to USetConvexHull, then reattaches the affine-hull equalities.
func ConvexHull(u poly.Union) (poly.Polyhedron, error) {
	if u.IsEmpty() {
		return poly.EmptySet(u.Dim), nil
	}
	eqs, err := AffineHull(u)
	if err != nil {
		return poly.Polyhedron{}, err
	}
	if len(eqs) == 0 {
		return USetConvexHull(u)
	}

	cc, err := matkit.NewCoordChange(eqs)
	if err != nil {
		return poly.Polyhedron{}, ErrFatal
	}
	reducedDim := cc.D - cc.K
	nonEmpty := u.NonEmptyMembers()
	reducedMembers := make([]poly.Polyhedron, 0, len(nonEmpty))
	for _, m := range nonEmpty {
		rEqs, err := transformAll(cc, m.Eqs)
		if err != nil {
			return poly.Polyhedron{}, err
		}
		rIneqs, err := transformAll(cc, m.Ineqs)
		if err != nil {
			return poly.Polyhedron{}, err
		}
		reducedMembers = append(reducedMembers, poly.Polyhedron{
			Dim: reducedDim, Eqs: rEqs, Ineqs: rIneqs, Flags: poly.Rational,
		})
	}
	reducedUnion := poly.Union{Dim: reducedDim, Polys: reducedMembers}
	reducedHull, err := USetConvexHull(reducedUnion)
	if err != nil {
		return poly.Polyhedron{}, err
	}

	pIneqs := make([]ratio.Form, 0, len(reducedHull.Ineqs))
	for _, c := range reducedHull.Ineqs {
		pre, err := cc.Preimage(c)
		if err != nil {
			return poly.Polyhedron{}, ErrFatal
		}
		pIneqs = append(pIneqs, pre)
	}
	pEqs := make([]ratio.Form, 0, len(reducedHull.Eqs)+len(eqs))
	for _, e := range reducedHull.Eqs {
		pre, err := cc.Preimage(e)
		if err != nil {
			return poly.Polyhedron{}, ErrFatal
		}
		pEqs = append(pEqs, pre)
	}
	pEqs = append(pEqs, eqs...)

	out := poly.Polyhedron{Dim: u.Dim, Eqs: pEqs, Ineqs: pIneqs, Flags: poly.Rational}
	return PolyhedronConvexHull(out)
}

// SimpleHull computes the cheaper over-approximation of spec §4.10: every
// inequality normal already present in some member is kept, tightened to
// bound the whole union, or dropped if the union is unbounded in that
// direction. Unlike ConvexHull it never introduces a new facet normal, so
// it is strictly cheaper but only tight when the input's normals already
// suffice.
func SimpleHull(u poly.Union) (poly.Polyhedron, error) {
	if u.IsEmpty() {
		return poly.EmptySet(u.Dim), nil
	}
	members := u.NonEmptyMembers()
	var seen []ratio.Form
	var kept []ratio.Form
	for _, m := range members {
		for _, c := range m.Ineqs {
			n := normalOnlyForm(c, u.Dim).Normalize()
			if containsForm(seen, n) {
				continue
			}
			seen = append(seen, n)
			bounded, minAll, err := unionMinDirection(members, n)
			if err != nil {
				return poly.Polyhedron{}, err
			}
			if !bounded {
				continue
			}
			kept = append(kept, buildBoundForm(n, minAll))
		}
	}
	p := poly.Polyhedron{Dim: u.Dim, Ineqs: kept, Flags: poly.Rational}
	return PolyhedronConvexHull(p)
}

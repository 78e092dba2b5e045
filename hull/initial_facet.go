package hull

import (
	"github.com/presburger/uhull/poly"
	"github.com/presburger/uhull/ratio"
)

// InitialFacetConstraint turns a maximal independent bounding-normal matrix
// (the output of IndependentBounds, C7) into one genuine facet constraint
// of conv(u) (spec §4.7, component C9).
//
// bounds[0] is a supporting hyperplane of u, but supporting alone does not
// make it a facet: it might touch the hull only along some lower-dimensional
// face (an edge, a vertex). Slicing u by bounds[0]=0 and taking the affine
// hull of the slice tells the difference: if the slice's affine hull is
// exactly the one equality bounds[0]=0, the slice is itself full-dimensional
// within that hyperplane and bounds[0] is a facet. Otherwise the slice is
// degenerate and bounds[0] needs to be rotated toward the true facet; that
// rotation is exactly WrapFacet (C8), using another independent bound as
// the pivoting direction and discarding it afterward. The bounds list
// shrinks by one row each iteration and the loop is guaranteed to terminate
// (there are only finitely many independent rows to begin with), ending
// either with a confirmed facet or, in the single-row case, with the only
// remaining candidate by default.
func InitialFacetConstraint(u poly.Union, bounds []ratio.Form) (ratio.Form, error) {
	if len(bounds) == 0 {
		return nil, ErrFatal
	}
	remaining := append([]ratio.Form(nil), bounds...)
	for {
		f := remaining[0]
		sliced, err := sliceUnion(u, f)
		if err != nil {
			return nil, err
		}
		eqs, err := AffineHull(sliced)
		if err != nil {
			return nil, err
		}
		if len(eqs) <= 1 || len(remaining) == 1 {
			return f, nil
		}
		last := remaining[len(remaining)-1]
		wrapped, err := WrapFacet(u, f, last)
		if err != nil {
			return nil, err
		}
		remaining = remaining[:len(remaining)-1]
		remaining[0] = wrapped
	}
}

// sliceUnion intersects every member of u with the hyperplane f=0, reducing
// each via C4. Members on which f=0 is infeasible become empty.
func sliceUnion(u poly.Union, f ratio.Form) (poly.Union, error) {
	out := poly.Union{Dim: u.Dim, Polys: make([]poly.Polyhedron, len(u.Polys))}
	for i, m := range u.Polys {
		if m.IsEmpty() {
			out.Polys[i] = m
			continue
		}
		reduced, err := PolyhedronConvexHull(m.WithEqs(f))
		if err != nil {
			return poly.Union{}, err
		}
		out.Polys[i] = reduced
	}
	return out, nil
}

package hull

import (
	"github.com/presburger/uhull/matkit"
	"github.com/presburger/uhull/poly"
	"github.com/presburger/uhull/ratio"
)

// Extend grows the hull of u breadth-first from a single known facet f0
// (spec §4.9, component C10).
//
// The output's inequality list doubles as the BFS queue: each facet is
// visited once in insertion order (including ones appended during the
// scan), its ridges are found via computeFacetRidges, and wrapping the
// facet around each ridge (C8) yields a candidate neighboring facet.
// Candidates equal bit-for-bit to one already in the list are dropped;
// spec §4.9 relies on this exact comparison rather than a numerical
// tolerance, matching ratio.Form.Equal's own documented purpose.
func Extend(u poly.Union, f0 ratio.Form, opts *HullOptions) (poly.Polyhedron, error) {
	facets := []ratio.Form{f0.Normalize()}
	opts.onFacet(facets[0])
	limit := opts.maxFacets()
	for i := 0; i < len(facets); i++ {
		f := facets[i]
		ridges, err := computeFacetRidges(u, f)
		if err != nil {
			return poly.Polyhedron{}, err
		}
		for _, r := range ridges {
			cand, err := WrapFacet(u, f, r)
			if err != nil {
				return poly.Polyhedron{}, err
			}
			if !containsForm(facets, cand) {
				if limit > 0 && len(facets) >= limit {
					return poly.Polyhedron{}, ErrTooManyFacets
				}
				facets = append(facets, cand)
				opts.onFacet(cand)
			}
		}
	}
	p := poly.Polyhedron{Dim: u.Dim, Ineqs: facets, Flags: poly.Rational}
	return PolyhedronConvexHull(p)
}

func containsForm(fs []ratio.Form, g ratio.Form) bool {
	for _, f := range fs {
		if f.Equal(g) {
			return true
		}
	}
	return false
}

// computeFacetRidges implements compute_facet (spec §4.9 step 1): slice u
// by f=0, change coordinates so f becomes the first axis and drop it,
// recurse into the general dispatcher on the (d-1)-dimensional image, then
// lift ("preimage") the resulting facets back to the original ambient
// space. Those lifted facets are exactly the ridges of the full hull lying
// on f.
func computeFacetRidges(u poly.Union, f ratio.Form) ([]ratio.Form, error) {
	sliced, err := sliceUnion(u, f)
	if err != nil {
		return nil, err
	}
	nonEmpty := sliced.NonEmptyMembers()
	if len(nonEmpty) == 0 {
		return nil, nil
	}
	cc, err := matkit.NewCoordChange([]ratio.Form{f})
	if err != nil {
		return nil, ErrFatal
	}
	reducedDim := cc.D - cc.K
	reducedMembers := make([]poly.Polyhedron, 0, len(nonEmpty))
	for _, m := range nonEmpty {
		rEqs, err := transformAll(cc, m.Eqs)
		if err != nil {
			return nil, err
		}
		rIneqs, err := transformAll(cc, m.Ineqs)
		if err != nil {
			return nil, err
		}
		reducedMembers = append(reducedMembers, poly.Polyhedron{
			Dim: reducedDim, Eqs: rEqs, Ineqs: rIneqs, Flags: poly.Rational,
		})
	}
	reducedUnion := poly.Union{Dim: reducedDim, Polys: reducedMembers}
	reducedHull, err := USetConvexHull(reducedUnion)
	if err != nil {
		return nil, err
	}
	ridges := make([]ratio.Form, 0, len(reducedHull.Ineqs))
	for _, c := range reducedHull.Ineqs {
		pre, err := cc.Preimage(c)
		if err != nil {
			return nil, ErrFatal
		}
		ridges = append(ridges, pre)
	}
	return ridges, nil
}

func transformAll(cc *matkit.CoordChange, fs []ratio.Form) ([]ratio.Form, error) {
	out := make([]ratio.Form, 0, len(fs))
	for _, f := range fs {
		tr, err := cc.Transform(f)
		if err != nil {
			return nil, ErrFatal
		}
		out = append(out, tr)
	}
	return out, nil
}

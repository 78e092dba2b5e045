package poly

import "github.com/presburger/uhull/ratio"

// Polyhedron is the basic set of spec §3: ambient dimension Dim, an ordered
// sequence of equalities and an ordered sequence of inequalities, each a
// linear form of length 1+Dim, plus the invariant Flags.
type Polyhedron struct {
	Dim    int
	Eqs    []ratio.Form
	Ineqs  []ratio.Form
	Flags  Flags
}

// Universe returns the full d-dimensional space (no constraints at all).
func Universe(d int) Polyhedron {
	return Polyhedron{Dim: d, Flags: Rational | NoRedundant | NoImplicit}
}

// EmptySet returns the empty polyhedron of dimension d.
func EmptySet(d int) Polyhedron {
	return Polyhedron{Dim: d, Flags: Empty}
}

// IsEmpty reports whether p is flagged empty.
func (p Polyhedron) IsEmpty() bool { return p.Flags.Has(Empty) }

// Clone returns a deep, independent copy of p.
func (p Polyhedron) Clone() Polyhedron {
	out := Polyhedron{Dim: p.Dim, Flags: p.Flags}
	out.Eqs = make([]ratio.Form, len(p.Eqs))
	for i, e := range p.Eqs {
		out.Eqs[i] = e.Clone()
	}
	out.Ineqs = make([]ratio.Form, len(p.Ineqs))
	for i, e := range p.Ineqs {
		out.Ineqs[i] = e.Clone()
	}
	return out
}

// WithEqs returns a copy of p with an additional equality appended and the
// NoImplicit/NoRedundant flags cleared (the new constraint may make
// existing inequalities redundant or implicit).
func (p Polyhedron) WithEqs(eqs ...ratio.Form) Polyhedron {
	out := p.Clone()
	out.Eqs = append(out.Eqs, cloneAll(eqs)...)
	out.Flags = out.Flags.Without(NoRedundant | NoImplicit)
	return out
}

// WithIneqs returns a copy of p with additional inequalities appended.
func (p Polyhedron) WithIneqs(ineqs ...ratio.Form) Polyhedron {
	out := p.Clone()
	out.Ineqs = append(out.Ineqs, cloneAll(ineqs)...)
	out.Flags = out.Flags.Without(NoRedundant | NoImplicit)
	return out
}

func cloneAll(fs []ratio.Form) []ratio.Form {
	out := make([]ratio.Form, len(fs))
	for i, f := range fs {
		out[i] = f.Clone()
	}
	return out
}

// DedupIneqs removes exact (post-normalization) duplicate inequalities,
// keeping the first occurrence. Only forms that are equal after Normalize,
// constant term included, count as duplicates: two inequalities with the
// same normal but different constants are both kept.
func (p Polyhedron) DedupIneqs() Polyhedron {
	out := p.Clone()
	seen := make([]ratio.Form, 0, len(out.Ineqs))
	kept := out.Ineqs[:0]
	for _, ineq := range out.Ineqs {
		n := ineq.Normalize()
		dup := false
		for _, s := range seen {
			if n.Equal(s) {
				dup = true
				break
			}
		}
		if !dup {
			seen = append(seen, n)
			kept = append(kept, ineq)
		}
	}
	out.Ineqs = kept
	return out
}

// AllConstraints returns equalities followed by inequalities, useful for
// iteration order matching spec §4.6 ("for each equality and inequality of
// each member polyhedron, in order").
func (p Polyhedron) AllConstraints() []ratio.Form {
	out := make([]ratio.Form, 0, len(p.Eqs)+len(p.Ineqs))
	out = append(out, p.Eqs...)
	out = append(out, p.Ineqs...)
	return out
}

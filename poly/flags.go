package poly

// Flags is a bitmask of the per-polyhedron invariants carried in spec §3.
type Flags uint8

const (
	// Empty marks a polyhedron with no points; consumers must
	// short-circuit on it rather than trust Eqs/Ineqs.
	Empty Flags = 1 << iota
	// Rational marks a polyhedron whose coefficients are to be
	// interpreted over the rationals (set by the top-level dispatcher;
	// spec §4.11 step 3: "Normalize and set RATIONAL").
	Rational
	// NoRedundant marks that every inequality is a facet (non-redundant).
	NoRedundant
	// NoImplicit marks that no inequality is implicitly an equality.
	NoImplicit
)

// Has reports whether f has all bits of want set.
func (f Flags) Has(want Flags) bool { return f&want == want }

// With returns f with the given bits set.
func (f Flags) With(bits Flags) Flags { return f | bits }

// Without returns f with the given bits cleared.
func (f Flags) Without(bits Flags) Flags { return f &^ bits }

package poly

// Union is the set of spec §3: an ordered sequence of polyhedra sharing an
// ambient dimension. Semantically it is the set-theoretic union; member
// order is irrelevant to any operation's output but is held stable while
// iterating (spec §5 "Ordering").
type Union struct {
	Dim   int
	Polys []Polyhedron
}

// NewUnion wraps members sharing dimension d. Members are not validated
// against d here; callers that build unions from untrusted input should use
// Validate.
func NewUnion(d int, members ...Polyhedron) Union {
	return Union{Dim: d, Polys: append([]Polyhedron(nil), members...)}
}

// EmptyUnion returns the union of zero members, semantically the empty set.
func EmptyUnion(d int) Union { return Union{Dim: d} }

// Validate reports ErrDimensionMismatch if any member's Dim differs from
// u.Dim.
func (u Union) Validate() error {
	for _, p := range u.Polys {
		if p.Dim != u.Dim {
			return ErrDimensionMismatch
		}
	}
	return nil
}

// Clone returns a deep copy of u.
func (u Union) Clone() Union {
	out := Union{Dim: u.Dim, Polys: make([]Polyhedron, len(u.Polys))}
	for i, p := range u.Polys {
		out.Polys[i] = p.Clone()
	}
	return out
}

// NonEmptyMembers returns the members that are not flagged Empty, in
// original order (spec §8 property 6: "removing an empty member from S does
// not change H(S)").
func (u Union) NonEmptyMembers() []Polyhedron {
	out := make([]Polyhedron, 0, len(u.Polys))
	for _, p := range u.Polys {
		if !p.IsEmpty() {
			out = append(out, p)
		}
	}
	return out
}

// IsEmpty reports whether every member is empty (or there are no members).
func (u Union) IsEmpty() bool {
	for _, p := range u.Polys {
		if !p.IsEmpty() {
			return false
		}
	}
	return true
}

// Len returns the number of members (including empty ones).
func (u Union) Len() int { return len(u.Polys) }

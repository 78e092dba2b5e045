package poly

// Map is the minimal parameter-bearing wrapper spec.md §4.11 step 2 calls
// "align existentials/divs across members; peel off parameters (external)".
// Divisions/existentials are genuinely external (spec.md §1 non-goal) and
// are not modeled; parameters are not: in the underlying representation a
// parameter is simply a dimension like any other, so peeling them off for
// the core's "pure set" contract is the identity — Body already carries
// them as its leading NParam dimensions. Map exists so ConvexHull(Map) and
// SimpleHull(Map) from spec.md's external-interface table have a concrete
// operation to call, without pretending to implement full existential
// elimination.
type Map struct {
	NParam int
	Body   Union // Dim == NParam + NIn + NOut
	NIn    int
	NOut   int
}

// NewMap wraps body, recording the parameter/input/output split.
func NewMap(nParam, nIn, nOut int, body Union) Map {
	return Map{NParam: nParam, NIn: nIn, NOut: nOut, Body: body}
}

// SetDim returns the combined (non-parameter) dimension, NIn+NOut.
func (m Map) SetDim() int { return m.NIn + m.NOut }

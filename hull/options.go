package hull

import (
	"errors"

	"github.com/presburger/uhull/ratio"
)

// ErrTooManyFacets is returned by Extend when opts.MaxFacets is positive
// and the extension loop would append more facets than that bound.
var ErrTooManyFacets = errors.New("hull: facet extension loop exceeded MaxFacets")

// HullOptions configures the facet-extension loop (component C10),
// mirroring the teacher's BFSOptions: a plain, nil-safe struct of optional
// hooks and tuning knobs rather than functional options, since the
// extension loop's shape (a visited-in-order queue) is structurally the
// same breadth-first walk BFSOptions instruments.
type HullOptions struct {
	// OnFacet is invoked once per facet appended to the hull under
	// construction, in insertion order (the first call is always f0
	// itself). Nil disables instrumentation.
	OnFacet func(f ratio.Form)
	// MaxFacets bounds the extension loop defensively. Zero (the default)
	// means unbounded. A bounded union's exact facet count is not known
	// in advance, so this is a safety valve against runaway input, not a
	// correctness parameter.
	MaxFacets int
}

// onFacet invokes opts.OnFacet if both are non-nil.
func (o *HullOptions) onFacet(f ratio.Form) {
	if o != nil && o.OnFacet != nil {
		o.OnFacet(f)
	}
}

// maxFacets returns opts.MaxFacets, or 0 (unbounded) if opts is nil.
func (o *HullOptions) maxFacets() int {
	if o == nil {
		return 0
	}
	return o.MaxFacets
}

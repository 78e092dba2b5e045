package uhull

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presburger/uhull/poly"
	"github.com/presburger/uhull/ratio"
)

// E1: {x = 0} ∪ {x = 2} -> 0 <= x <= 2, exercised through the full
// ConvexHull entry point rather than Hull1D directly.
func TestConvexHullTwoPointsYieldsSegment(t *testing.T) {
	u := poly.NewUnion(1,
		poly.Polyhedron{Dim: 1, Eqs: []ratio.Form{ratio.FromInts(0, 1)}, Flags: poly.Rational},
		poly.Polyhedron{Dim: 1, Eqs: []ratio.Form{ratio.FromInts(-2, 1)}, Flags: poly.Rational},
	)
	out, err := ConvexHull(u)
	require.NoError(t, err)
	assert.False(t, out.IsEmpty())
	require.Len(t, out.Ineqs, 2)
	for _, c := range []ratio.Form{ratio.FromInts(0, 1), ratio.FromInts(2, -1)} {
		assertHolds(t, out, c)
	}
}

// E4: {x >= 0} ∪ {x <= 0} -> the whole line, no constraints survive.
func TestConvexHullOppositeRaysYieldWholeLine(t *testing.T) {
	u := poly.NewUnion(1,
		poly.Polyhedron{Dim: 1, Ineqs: []ratio.Form{ratio.FromInts(0, 1)}, Flags: poly.Rational},
		poly.Polyhedron{Dim: 1, Ineqs: []ratio.Form{ratio.FromInts(0, -1)}, Flags: poly.Rational},
	)
	out, err := ConvexHull(u)
	require.NoError(t, err)
	assert.False(t, out.IsEmpty())
	assert.Empty(t, out.Eqs)
	assert.Empty(t, out.Ineqs)
}

// E6: a union with a single EMPTY member is EMPTY.
func TestConvexHullSingleEmptyMemberIsEmpty(t *testing.T) {
	u := poly.NewUnion(2, poly.EmptySet(2))
	out, err := ConvexHull(u)
	require.NoError(t, err)
	assert.True(t, out.IsEmpty())
}

// E5: {x >= 0, y = 0} ∪ {x = 0, y >= 0}, two rays sharing the origin in
// independent directions, hull to the first quadrant {x >= 0, y >= 0}.
// This exercises the unbounded (Minkowski/Fourier-Motzkin) path, C6, end
// to end through the top-level dispatcher.
func TestConvexHullTwoRaysYieldFirstQuadrant(t *testing.T) {
	rayX := poly.Polyhedron{
		Dim:   2,
		Eqs:   []ratio.Form{ratio.FromInts(0, 0, 1)},
		Ineqs: []ratio.Form{ratio.FromInts(0, 1, 0)},
		Flags: poly.Rational,
	}
	rayY := poly.Polyhedron{
		Dim:   2,
		Eqs:   []ratio.Form{ratio.FromInts(0, 1, 0)},
		Ineqs: []ratio.Form{ratio.FromInts(0, 0, 1)},
		Flags: poly.Rational,
	}
	u := poly.NewUnion(2, rayX, rayY)
	out, err := ConvexHull(u)
	require.NoError(t, err)
	assert.False(t, out.IsEmpty())
	assert.Empty(t, out.Eqs)
	require.Len(t, out.Ineqs, 2)
	assertHolds(t, out, ratio.FromInts(0, 1, 0))
	assertHolds(t, out, ratio.FromInts(0, 0, 1))

	// A point outside the first quadrant must violate at least one
	// facet (soundness: the hull must not overshoot).
	outside := []*big.Rat{big.NewRat(-1, 1), big.NewRat(0, 1)}
	violated := false
	for _, c := range out.Ineqs {
		if c.EvalRat(outside).Sign() < 0 {
			violated = true
		}
	}
	assert.True(t, violated, "expected (-1, 0) to violate at least one facet of the first-quadrant hull")
}

// assertHolds checks that out carries a constraint parallel to c: up to a
// nonzero scale (so c itself or its negation), c must appear among out's
// equalities or inequalities.
func assertHolds(t *testing.T, out poly.Polyhedron, c ratio.Form) {
	t.Helper()
	for _, e := range out.Eqs {
		if sameDirection(e, c) {
			return
		}
	}
	for _, ineq := range out.Ineqs {
		if sameDirection(ineq, c) {
			return
		}
	}
	t.Fatalf("expected hull to carry a constraint parallel to %s, got eqs=%v ineqs=%v", c, out.Eqs, out.Ineqs)
}

func sameDirection(f, g ratio.Form) bool {
	nf := f.Clone().Normalize().NormalizeSign()
	ng := g.Clone().Normalize().NormalizeSign()
	return nf.Equal(ng)
}

// ConvexHullMap/SimpleHullMap peel nothing off (poly.Map's parameters are
// ordinary leading dimensions of Body already); both must agree with
// calling ConvexHull/SimpleHull on the body union directly.
func TestConvexHullMapMatchesBodyHull(t *testing.T) {
	u := poly.NewUnion(1,
		poly.Polyhedron{Dim: 1, Eqs: []ratio.Form{ratio.FromInts(0, 1)}, Flags: poly.Rational},
		poly.Polyhedron{Dim: 1, Eqs: []ratio.Form{ratio.FromInts(-2, 1)}, Flags: poly.Rational},
	)
	m := poly.NewMap(0, 1, 0, u)
	want, err := ConvexHull(u)
	require.NoError(t, err)
	got, err := ConvexHullMap(m)
	require.NoError(t, err)
	require.Len(t, got.Ineqs, len(want.Ineqs))
	for _, c := range want.Ineqs {
		assertHolds(t, got, c)
	}

	wantSimple, err := SimpleHull(u)
	require.NoError(t, err)
	gotSimple, err := SimpleHullMap(m)
	require.NoError(t, err)
	assert.Equal(t, len(wantSimple.Ineqs), len(gotSimple.Ineqs))
}


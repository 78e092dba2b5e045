package hull

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presburger/uhull/poly"
	"github.com/presburger/uhull/ratio"
)

func TestPolyhedronConvexHullDropsRedundant(t *testing.T) {
	p := poly.Polyhedron{
		Dim: 2,
		Ineqs: []ratio.Form{
			ratio.FromInts(0, 1, 0),  // x >= 0
			ratio.FromInts(1, -1, 0), // x <= 1
			ratio.FromInts(0, 0, 1),  // y >= 0
			ratio.FromInts(1, 0, -1), // y <= 1
			ratio.FromInts(5, 1, 0),  // x >= -5, redundant
		},
		Flags: poly.Rational,
	}
	out, err := PolyhedronConvexHull(p)
	require.NoError(t, err)
	assert.False(t, out.IsEmpty())
	assert.True(t, out.Flags.Has(poly.NoRedundant))
	assert.True(t, out.Flags.Has(poly.NoImplicit))
	assert.Len(t, out.Ineqs, 4)
}

func TestPolyhedronConvexHullPromotesImplicitEquality(t *testing.T) {
	p := poly.Polyhedron{
		Dim: 1,
		Ineqs: []ratio.Form{
			ratio.FromInts(0, 1),  // x >= 0
			ratio.FromInts(0, -1), // x <= 0
		},
		Flags: poly.Rational,
	}
	out, err := PolyhedronConvexHull(p)
	require.NoError(t, err)
	assert.Len(t, out.Eqs, 1)
	assert.Len(t, out.Ineqs, 0)
}

func TestPolyhedronConvexHullInfeasibleBecomesEmpty(t *testing.T) {
	p := poly.Polyhedron{
		Dim: 1,
		Ineqs: []ratio.Form{
			ratio.FromInts(-1, 1), // x >= 1
			ratio.FromInts(0, -1), // x <= 0
		},
		Flags: poly.Rational,
	}
	out, err := PolyhedronConvexHull(p)
	require.NoError(t, err)
	assert.True(t, out.IsEmpty())
}

func TestPolyhedronConvexHullEqualityContradiction(t *testing.T) {
	p := poly.Polyhedron{
		Dim: 1,
		Eqs: []ratio.Form{
			ratio.FromInts(0, 1),  // x = 0
			ratio.FromInts(-1, 1), // x = 1
		},
		Flags: poly.Rational,
	}
	out, err := PolyhedronConvexHull(p)
	require.NoError(t, err)
	assert.True(t, out.IsEmpty())
}

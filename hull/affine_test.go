package hull

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presburger/uhull/poly"
	"github.com/presburger/uhull/ratio"
)

// E1: two points in 1-D share no forced equality across the pair (the
// union spans the whole line between them).
func TestAffineHullTwoPointsNoEquality(t *testing.T) {
	u := poly.NewUnion(1,
		poly.Polyhedron{Dim: 1, Eqs: []ratio.Form{ratio.FromInts(0, 1)}, Flags: poly.Rational},
		poly.Polyhedron{Dim: 1, Eqs: []ratio.Form{ratio.FromInts(-2, 1)}, Flags: poly.Rational},
	)
	eqs, err := AffineHull(u)
	require.NoError(t, err)
	assert.Empty(t, eqs)
}

// Two parallel axis-aligned lines in 3D share only the plane y=0.
func TestAffineHullParallelLinesShareOnePlane(t *testing.T) {
	u := poly.NewUnion(3,
		poly.Polyhedron{Dim: 3, Eqs: []ratio.Form{ratio.FromInts(0, 1, 0, 0), ratio.FromInts(0, 0, 1, 0)}, Flags: poly.Rational},
		poly.Polyhedron{Dim: 3, Eqs: []ratio.Form{ratio.FromInts(-1, 1, 0, 0), ratio.FromInts(0, 0, 1, 0)}, Flags: poly.Rational},
	)
	eqs, err := AffineHull(u)
	require.NoError(t, err)
	require.Len(t, eqs, 1)
	n := eqs[0].NormalizeSign()
	assert.Equal(t, int64(0), n.Coeff(1).Int64())
	assert.NotEqual(t, int64(0), n.Coeff(2).Int64())
	assert.Equal(t, int64(0), n.Coeff(3).Int64())
}

func TestAffineHullSingleFullDimensionalMemberIsEmpty(t *testing.T) {
	u := poly.NewUnion(2, poly.Polyhedron{
		Dim: 2,
		Ineqs: []ratio.Form{
			ratio.FromInts(0, 1, 0),
			ratio.FromInts(1, -1, 0),
			ratio.FromInts(0, 0, 1),
			ratio.FromInts(1, 0, -1),
		},
		Flags: poly.Rational,
	})
	eqs, err := AffineHull(u)
	require.NoError(t, err)
	assert.Empty(t, eqs)
}

func square2D(xlo, xhi, ylo, yhi int64) poly.Polyhedron {
	return poly.Polyhedron{
		Dim: 2,
		Ineqs: []ratio.Form{
			ratio.FromInts(-xlo, 1, 0),
			ratio.FromInts(xhi, -1, 0),
			ratio.FromInts(-ylo, 0, 1),
			ratio.FromInts(yhi, 0, -1),
		},
		Flags: poly.Rational,
	}
}

// E2: two disjoint bounded squares.
func TestIsBoundedTrueForBoundedUnion(t *testing.T) {
	u := poly.NewUnion(2, square2D(0, 1, 0, 1), square2D(2, 3, 2, 3))
	bounded, err := IsBounded(u)
	require.NoError(t, err)
	assert.True(t, bounded)
}

// E4: {x >= 0} ∪ {x <= 0} is unbounded.
func TestIsBoundedFalseForUnboundedUnion(t *testing.T) {
	u := poly.NewUnion(1,
		poly.Polyhedron{Dim: 1, Ineqs: []ratio.Form{ratio.FromInts(0, 1)}, Flags: poly.Rational},
		poly.Polyhedron{Dim: 1, Ineqs: []ratio.Form{ratio.FromInts(0, -1)}, Flags: poly.Rational},
	)
	bounded, err := IsBounded(u)
	require.NoError(t, err)
	assert.False(t, bounded)
}

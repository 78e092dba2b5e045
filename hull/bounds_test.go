package hull

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presburger/uhull/poly"
	"github.com/presburger/uhull/ratio"
)

func TestIndependentBoundsUnitSquareYieldsTwoIndependentBounds(t *testing.T) {
	u := poly.NewUnion(2, square2D(0, 1, 0, 1))
	bounds, err := IndependentBounds(u)
	require.NoError(t, err)
	require.Len(t, bounds, 2)

	// The two normals must be linearly independent: a 2x2 matrix of their
	// coefficients has nonzero determinant.
	a0, a1 := bounds[0].Coeff(1), bounds[0].Coeff(2)
	b0, b1 := bounds[1].Coeff(1), bounds[1].Coeff(2)
	det := a0.Int64()*b1.Int64() - a1.Int64()*b0.Int64()
	assert.NotEqual(t, int64(0), det)
}

func TestIndependentBoundsTwoDisjointSquaresStillBounded(t *testing.T) {
	u := poly.NewUnion(2, square2D(0, 1, 0, 1), square2D(5, 6, 5, 6))
	bounds, err := IndependentBounds(u)
	require.NoError(t, err)
	assert.Len(t, bounds, 2)
}

func TestIndependentBoundsUnboundedUnionYieldsFewerThanDim(t *testing.T) {
	u := poly.NewUnion(2, poly.Polyhedron{
		Dim: 2,
		Ineqs: []ratio.Form{
			ratio.FromInts(0, 0, 1),
			ratio.FromInts(1, 0, -1),
		},
		Flags: poly.Rational,
	})
	bounds, err := IndependentBounds(u)
	require.NoError(t, err)
	// Only y is bounded in this half-strip (0<=y<=1, x free); x contributes
	// no accepted bound since it is unbounded both ways.
	assert.Len(t, bounds, 1)
}

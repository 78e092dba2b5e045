package hull

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presburger/uhull/ratio"
)

// Starting from the known facet x>=0 of the point+segment triangle
// (vertices (1,0), (0,0), (0,2)), the breadth-first extension loop must
// discover exactly the triangle's other two edges: y>=0 and the
// hypotenuse through (0,2) and (1,0).
func TestExtendDiscoversFullTriangle(t *testing.T) {
	u := trianglePointAndSegment()
	f0 := ratio.FromInts(0, 1, 0) // x >= 0
	out, err := Extend(u, f0, nil)
	require.NoError(t, err)
	require.Len(t, out.Ineqs, 3)

	vertices := [][]*big.Rat{
		{big.NewRat(1, 1), big.NewRat(0, 1)},
		{big.NewRat(0, 1), big.NewRat(0, 1)},
		{big.NewRat(0, 1), big.NewRat(2, 1)},
	}
	for _, v := range vertices {
		onBoundary := 0
		for _, c := range out.Ineqs {
			val := c.EvalRat(v)
			require.GreaterOrEqual(t, val.Sign(), 0, "vertex %v must satisfy every facet", v)
			if val.Sign() == 0 {
				onBoundary++
			}
		}
		assert.Equal(t, 2, onBoundary, "each triangle vertex lies on exactly two edges")
	}
}

// OnFacet fires once per accepted facet, in insertion order, the first
// call always being f0 itself.
func TestExtendOnFacetHookFiresInOrder(t *testing.T) {
	u := trianglePointAndSegment()
	f0 := ratio.FromInts(0, 1, 0)
	var seen []ratio.Form
	_, err := Extend(u, f0, &HullOptions{OnFacet: func(f ratio.Form) {
		seen = append(seen, f)
	}})
	require.NoError(t, err)
	require.NotEmpty(t, seen)
	assert.True(t, seen[0].Equal(f0.Normalize()))
	assert.Len(t, seen, 3)
}

// MaxFacets=1 forbids appending anything beyond f0, so a triangle (which
// needs three) must fail with ErrTooManyFacets.
func TestExtendMaxFacetsBound(t *testing.T) {
	u := trianglePointAndSegment()
	f0 := ratio.FromInts(0, 1, 0)
	_, err := Extend(u, f0, &HullOptions{MaxFacets: 1})
	require.ErrorIs(t, err, ErrTooManyFacets)
}

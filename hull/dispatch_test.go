package hull

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presburger/uhull/poly"
)

// A single non-empty member is returned as its own (reduced) hull without
// entering the bounds/wrapping machinery at all.
func TestUSetConvexHullSingleMemberShortCircuits(t *testing.T) {
	u := poly.NewUnion(2, square2D(0, 1, 0, 1))
	out, err := USetConvexHull(u)
	require.NoError(t, err)
	assert.Len(t, out.Ineqs, 4)
}

// The full bounds-and-wrapping pipeline (C7-C10), entered directly through
// USetConvexHull rather than via a pre-selected facet, must still recover
// the point+segment triangle's three edges.
func TestUSetConvexHullTriangleViaBoundsAndWrapping(t *testing.T) {
	u := trianglePointAndSegment()
	out, err := USetConvexHull(u)
	require.NoError(t, err)
	require.Len(t, out.Ineqs, 3)

	vertices := [][]*big.Rat{
		{big.NewRat(1, 1), big.NewRat(0, 1)},
		{big.NewRat(0, 1), big.NewRat(0, 1)},
		{big.NewRat(0, 1), big.NewRat(2, 1)},
	}
	for _, v := range vertices {
		for _, c := range out.Ineqs {
			require.GreaterOrEqual(t, c.EvalRat(v).Sign(), 0)
		}
	}
}

// An empty union dispatches to the empty set without touching any of the
// bounded/unbounded machinery.
func TestUSetConvexHullEmptyUnion(t *testing.T) {
	u := poly.EmptyUnion(3)
	out, err := USetConvexHull(u)
	require.NoError(t, err)
	assert.True(t, out.IsEmpty())
}

// SimpleHull never introduces a facet normal absent from every member: two
// disjoint unit squares share the axis-aligned normals, so SimpleHull's
// bounding box must exactly match the true convex hull's bounding box
// (x in [0,3], y in [0,3]) even though it cannot discover the diagonal
// cuts a full ConvexHull would add.
func TestSimpleHullUsesOnlyExistingNormals(t *testing.T) {
	u := poly.NewUnion(2, square2D(0, 1, 0, 1), square2D(2, 3, 2, 3))
	out, err := SimpleHull(u)
	require.NoError(t, err)
	require.Len(t, out.Ineqs, 4)

	corners := [][]*big.Rat{
		{big.NewRat(0, 1), big.NewRat(0, 1)},
		{big.NewRat(3, 1), big.NewRat(3, 1)},
	}
	for _, v := range corners {
		for _, c := range out.Ineqs {
			require.GreaterOrEqual(t, c.EvalRat(v).Sign(), 0)
		}
	}
	// A point outside the bounding box must violate at least one facet.
	outside := []*big.Rat{big.NewRat(4, 1), big.NewRat(4, 1)}
	violated := false
	for _, c := range out.Ineqs {
		if c.EvalRat(outside).Sign() < 0 {
			violated = true
		}
	}
	assert.True(t, violated)
}

// SimpleHull on an empty union is empty.
func TestSimpleHullEmptyUnion(t *testing.T) {
	u := poly.EmptyUnion(2)
	out, err := SimpleHull(u)
	require.NoError(t, err)
	assert.True(t, out.IsEmpty())
}

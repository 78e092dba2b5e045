package hull

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presburger/uhull/poly"
	"github.com/presburger/uhull/ratio"
)

func TestHull0D(t *testing.T) {
	assert.True(t, Hull0D(poly.EmptyUnion(0)).IsEmpty())
	u := poly.NewUnion(0, poly.Universe(0))
	out := Hull0D(u)
	assert.False(t, out.IsEmpty())
	assert.Equal(t, 0, out.Dim)
}

// E1: {x = 0} ∪ {x = 2} -> 0 <= x <= 2.
func TestHull1DTwoPoints(t *testing.T) {
	u := poly.NewUnion(1,
		poly.Polyhedron{Dim: 1, Eqs: []ratio.Form{ratio.FromInts(0, 1)}, Flags: poly.Rational},
		poly.Polyhedron{Dim: 1, Eqs: []ratio.Form{ratio.FromInts(-2, 1)}, Flags: poly.Rational},
	)
	out, err := Hull1D(u)
	require.NoError(t, err)
	require.Len(t, out.Ineqs, 2)
	lo, loOk, hi, hiOk := member1DBounds(out)
	require.True(t, loOk)
	require.True(t, hiOk)
	assert.Equal(t, int64(0), lo.Num().Int64())
	assert.Equal(t, int64(2), hi.Num().Int64())
}

// E4: {x >= 0} ∪ {x <= 0} -> universe of dimension 1.
func TestHull1DUnbounded(t *testing.T) {
	u := poly.NewUnion(1,
		poly.Polyhedron{Dim: 1, Ineqs: []ratio.Form{ratio.FromInts(0, 1)}, Flags: poly.Rational},
		poly.Polyhedron{Dim: 1, Ineqs: []ratio.Form{ratio.FromInts(0, -1)}, Flags: poly.Rational},
	)
	out, err := Hull1D(u)
	require.NoError(t, err)
	assert.Len(t, out.Ineqs, 0)
	assert.Len(t, out.Eqs, 0)
	assert.False(t, out.IsEmpty())
}

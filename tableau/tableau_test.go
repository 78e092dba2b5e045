package tableau

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presburger/uhull/poly"
	"github.com/presburger/uhull/ratio"
)

func TestDetectRedundantSimpleSquare(t *testing.T) {
	p := poly.Polyhedron{
		Dim: 2,
		Ineqs: []ratio.Form{
			ratio.FromInts(0, 1, 0),  // x >= 0
			ratio.FromInts(1, -1, 0), // x <= 1
			ratio.FromInts(0, 0, 1),  // y >= 0
			ratio.FromInts(1, 0, -1), // y <= 1
			ratio.FromInts(5, 1, 0),  // x >= -5, redundant given x>=0
		},
		Flags: poly.Rational,
	}
	live := []bool{true, true, true, true, true}
	tb := FromPolyhedron(p)
	red, err := tb.DetectRedundant(live)
	require.NoError(t, err)
	assert.False(t, red[0])
	assert.False(t, red[1])
	assert.False(t, red[2])
	assert.False(t, red[3])
	assert.True(t, red[4])
}

func TestDetectEqualitiesPinchedInterval(t *testing.T) {
	p := poly.Polyhedron{
		Dim: 1,
		Ineqs: []ratio.Form{
			ratio.FromInts(0, 1),  // x >= 0
			ratio.FromInts(0, -1), // x <= 0 -> forces x = 0
		},
		Flags: poly.Rational,
	}
	tb := FromPolyhedron(p)
	eqs, err := tb.DetectEqualities()
	require.NoError(t, err)
	assert.True(t, eqs[0])
	assert.True(t, eqs[1])
}

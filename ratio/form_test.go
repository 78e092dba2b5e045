package ratio

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormNormalize(t *testing.T) {
	f := FromInts(4, 2, -6)
	n := f.Normalize()
	assert.True(t, n.Equal(FromInts(2, 1, -3)))
}

func TestFormNormalizeSignFlipsNegated(t *testing.T) {
	a := FromInts(2, 4, -6).NormalizeSign()
	b := FromInts(-2, -4, 6).NormalizeSign()
	assert.True(t, a.Equal(b))
}

func TestCombineEliminatesColumn(t *testing.T) {
	// f: x1 - 2 x2 = 0 ; g: 2x1 + x2 - 5 = 0
	f := FromInts(0, 1, -2)
	g := FromInts(-5, 2, 1)
	// eliminate x1: 2*f - 1*g
	h, err := Combine(big.NewInt(2), f, big.NewInt(-1), g)
	require.NoError(t, err)
	assert.Equal(t, int64(0), h[1].Int64())
}

func TestEvalRat(t *testing.T) {
	f := FromInts(1, 2, 3)
	x := []*big.Rat{big.NewRat(1, 1), big.NewRat(1, 2)}
	v := f.EvalRat(x)
	assert.Equal(t, big.NewRat(9, 2), v)
}

func TestEqualLengthMismatch(t *testing.T) {
	f := FromInts(1, 2)
	g := FromInts(1, 2, 3)
	assert.False(t, f.Equal(g))
	_, err := Combine(big.NewInt(1), f, big.NewInt(1), g)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

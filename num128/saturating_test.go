package num128

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaturatingArithmetic(t *testing.T) {
	assert.Equal(t, MaxU128(),
		AsSaturating(MaxU128()).Add(AsSaturating(U128From64(1))).Value())
	assert.Equal(t, U128From64(0),
		AsSaturating(U128From64(0)).Sub(AsSaturating(U128From64(1))).Value())

	two64 := AsSaturating(u128(t, "18446744073709551616"))
	assert.Equal(t, MaxU128(), two64.Mul(two64).Value())

	assert.Equal(t, MinI128(),
		AsSaturating(MinI128()).Sub(AsSaturating(I128From64(1))).Value())
	assert.Equal(t, MaxI128(),
		AsSaturating(MaxI128()).Add(AsSaturating(I128From64(1))).Value())
	assert.Equal(t, I128From64(-6),
		AsSaturating(I128From64(2)).Mul(AsSaturating(I128From64(-3))).Value())
}

func TestSaturatingSignedEdges(t *testing.T) {
	min := AsSaturating(MinI128())
	negOne := AsSaturating(I128From64(-1))

	assert.Equal(t, MaxI128(), min.Div(negOne).Value())
	assert.Equal(t, I128From64(0), min.Rem(negOne).Value())
	assert.Equal(t, MaxI128(), min.Abs().Value())
	assert.Equal(t, MaxI128(), min.DivEuclid(negOne).Value())
	assert.Equal(t, I128From64(0), min.RemEuclid(negOne).Value())

	assert.Equal(t, I128From64(1),
		AsSaturating(I128From64(-7)).RemEuclid(AsSaturating(I128From64(4))).Value())
}

func TestSaturatingPow(t *testing.T) {
	assert.Equal(t, MaxU128(), AsSaturating(U128From64(2)).Pow(128).Value())
	assert.Equal(t, U128FromRaw(1<<63, 0), AsSaturating(U128From64(2)).Pow(127).Value())

	// A negative base raised to an odd exponent saturates toward the minimum.
	assert.Equal(t, MinI128(), AsSaturating(I128From64(-3)).Pow(129).Value())
	assert.Equal(t, MaxI128(), AsSaturating(I128From64(-3)).Pow(130).Value())
	assert.Equal(t, I128From64(-27), AsSaturating(I128From64(-3)).Pow(3).Value())

	// (-2)^127 is exactly the minimum and needs no clamping.
	assert.Equal(t, MinI128(), AsSaturating(I128From64(-2)).Pow(127).Value())
}

func TestSaturatingDivideByZeroFatal(t *testing.T) {
	require.Panics(t, func() {
		AsSaturating(U128From64(1)).Div(AsSaturating(U128From64(0)))
	})
	require.Panics(t, func() {
		AsSaturating(I128From64(1)).RemEuclid(AsSaturating(I128From64(0)))
	})
}

func TestSaturatingString(t *testing.T) {
	assert.Equal(t, "170141183460469231731687303715884105727", AsSaturating(MaxI128()).String())
}

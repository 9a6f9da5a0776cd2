package intops

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// The four policy laws for addition, cross-checked against exact math/big
// arithmetic over a grid of boundary-heavy operands.

func checkAddLaws[T Integer](t *testing.T, a, b T, exact *big.Int) {
	t.Helper()

	min := new(big.Int).SetInt64(int64(MinOf[T]()))
	max := new(big.Int).SetUint64(uint64(MaxOf[T]()))
	if IsSigned[T]() {
		max.SetInt64(int64(MaxOf[T]()))
	}
	representable := exact.Cmp(min) >= 0 && exact.Cmp(max) <= 0

	// Wrapping law: the exact result reduced modulo 2^bits, remapped.
	span := new(big.Int).Lsh(big.NewInt(1), BitsOf[T]())
	wrapped := new(big.Int).Mod(exact, span)
	if wrapped.Cmp(max) > 0 {
		wrapped.Sub(wrapped, span)
	}

	toBig := func(v T) *big.Int {
		if IsSigned[T]() {
			return new(big.Int).SetInt64(int64(v))
		}
		return new(big.Int).SetUint64(uint64(v))
	}

	addW := WrappingAdd(a, b)
	require.Zero(t, wrapped.Cmp(toBig(addW)), "wrapping law: %v + %v", a, b)

	// Checked law: ok exactly when representable.
	addC, ok := CheckedAdd(a, b)
	require.Equal(t, representable, ok, "checked law: %v + %v", a, b)
	if ok {
		require.Equal(t, addW, addC)
	}

	// Overflowing law: value equals wrapping; flag inverse of representable.
	addO, ovf := OverflowingAdd(a, b)
	require.Equal(t, addW, addO, "overflowing value law: %v + %v", a, b)
	require.Equal(t, !representable, ovf, "overflowing flag law: %v + %v", a, b)

	// Saturating law: exact when representable, else the exceeded bound.
	addS := SaturatingAdd(a, b)
	switch {
	case representable:
		require.Equal(t, addW, addS)
	case exact.Cmp(max) > 0:
		require.Equal(t, MaxOf[T](), addS)
	default:
		require.Equal(t, MinOf[T](), addS)
	}
}

func TestPolicyLawsInt8(t *testing.T) {
	values := []int8{math.MinInt8, math.MinInt8 + 1, -64, -2, -1, 0, 1, 2, 63, 64, math.MaxInt8 - 1, math.MaxInt8}

	for _, a := range values {
		for _, b := range values {
			exact := new(big.Int).Add(big.NewInt(int64(a)), big.NewInt(int64(b)))
			checkAddLaws(t, a, b, exact)
		}
	}
}

func TestPolicyLawsUint8(t *testing.T) {
	values := []uint8{0, 1, 2, 127, 128, 129, 254, 255}

	for _, a := range values {
		for _, b := range values {
			exact := new(big.Int).Add(big.NewInt(int64(a)), big.NewInt(int64(b)))
			checkAddLaws(t, a, b, exact)
		}
	}
}

func TestPolicyLawsUint64(t *testing.T) {
	values := []uint64{0, 1, math.MaxUint64 / 2, math.MaxUint64 - 1, math.MaxUint64}

	for _, a := range values {
		for _, b := range values {
			exact := new(big.Int).Add(
				new(big.Int).SetUint64(a),
				new(big.Int).SetUint64(b),
			)
			checkAddLaws(t, a, b, exact)
		}
	}
}

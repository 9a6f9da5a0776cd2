package intops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverflowingAdd(t *testing.T) {
	got, ovf := OverflowingAdd(uint8(250), 10)
	assert.Equal(t, uint8(4), got)
	assert.True(t, ovf)

	got, ovf = OverflowingAdd(uint8(250), 5)
	assert.Equal(t, uint8(255), got)
	assert.False(t, ovf)

	got8, ovf := OverflowingAdd(int8(120), 10)
	assert.Equal(t, int8(-126), got8)
	assert.True(t, ovf)
}

func TestOverflowingSub(t *testing.T) {
	got, ovf := OverflowingSub(uint8(10), 20)
	assert.Equal(t, uint8(246), got)
	assert.True(t, ovf)

	got8, ovf := OverflowingSub(int8(-120), 20)
	assert.Equal(t, int8(116), got8)
	assert.True(t, ovf)

	got8, ovf = OverflowingSub(int8(-120), 8)
	assert.Equal(t, int8(-128), got8)
	assert.False(t, ovf)
}

func TestOverflowingMul(t *testing.T) {
	got, ovf := OverflowingMul(int8(16), 8)
	assert.Equal(t, int8(-128), got)
	assert.True(t, ovf)

	got, ovf = OverflowingMul(int8(11), 11)
	assert.Equal(t, int8(121), got)
	assert.False(t, ovf)
}

func TestOverflowingDivRem(t *testing.T) {
	got, ovf := OverflowingDiv(int8(math.MinInt8), -1)
	assert.Equal(t, int8(math.MinInt8), got)
	assert.True(t, ovf)

	got, ovf = OverflowingRem(int8(math.MinInt8), -1)
	assert.Equal(t, int8(0), got)
	assert.True(t, ovf)

	got, ovf = OverflowingDiv(int8(100), 3)
	assert.Equal(t, int8(33), got)
	assert.False(t, ovf)

	require.Panics(t, func() {
		OverflowingDiv(int8(1), 0)
	})
	require.Panics(t, func() {
		OverflowingRem(int8(1), 0)
	})
}

func TestOverflowingNeg(t *testing.T) {
	got, ovf := OverflowingNeg(int8(math.MinInt8))
	assert.Equal(t, int8(math.MinInt8), got)
	assert.True(t, ovf)

	got, ovf = OverflowingNeg(int8(100))
	assert.Equal(t, int8(-100), got)
	assert.False(t, ovf)

	got8, ovf := OverflowingNeg(uint8(100))
	assert.Equal(t, uint8(156), got8)
	assert.True(t, ovf)

	got8, ovf = OverflowingNeg(uint8(0))
	assert.Equal(t, uint8(0), got8)
	assert.False(t, ovf)
}

func TestOverflowingShift(t *testing.T) {
	got, ovf := OverflowingShl(uint8(1), 7)
	assert.Equal(t, uint8(128), got)
	assert.False(t, ovf)

	got, ovf = OverflowingShl(uint8(1), 8)
	assert.Equal(t, uint8(1), got)
	assert.True(t, ovf)

	got8, ovf := OverflowingShr(int8(-4), 9)
	assert.Equal(t, int8(-2), got8)
	assert.True(t, ovf)
}

func TestOverflowingAbs(t *testing.T) {
	got, ovf := OverflowingAbs(int8(math.MinInt8))
	assert.Equal(t, int8(math.MinInt8), got)
	assert.True(t, ovf)

	got, ovf = OverflowingAbs(int8(-100))
	assert.Equal(t, int8(100), got)
	assert.False(t, ovf)
}

func TestOverflowingPow(t *testing.T) {
	got, ovf := OverflowingPow(uint8(3), 5)
	assert.Equal(t, uint8(243), got)
	assert.False(t, ovf)

	got, ovf = OverflowingPow(uint8(2), 8)
	assert.Equal(t, uint8(0), got)
	assert.True(t, ovf)
}

func TestOverflowingEuclid(t *testing.T) {
	got, ovf := OverflowingDivEuclid(int8(math.MinInt8), -1)
	assert.Equal(t, int8(math.MinInt8), got)
	assert.True(t, ovf)

	got, ovf = OverflowingRemEuclid(int8(math.MinInt8), -1)
	assert.Equal(t, int8(0), got)
	assert.True(t, ovf)

	got32, ovf := OverflowingDivEuclid(int8(-7), 4)
	assert.Equal(t, int8(-2), got32)
	assert.False(t, ovf)
}

// The value component of every overflowing operation must equal the
// wrapping result for the same operands.
func TestOverflowingMatchesWrapping(t *testing.T) {
	values := []int8{math.MinInt8, -100, -2, -1, 0, 1, 2, 100, math.MaxInt8}

	for _, a := range values {
		for _, b := range values {
			add, _ := OverflowingAdd(a, b)
			assert.Equal(t, WrappingAdd(a, b), add)

			sub, _ := OverflowingSub(a, b)
			assert.Equal(t, WrappingSub(a, b), sub)

			mul, _ := OverflowingMul(a, b)
			assert.Equal(t, WrappingMul(a, b), mul)
		}
	}
}

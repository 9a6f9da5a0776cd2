package overflow

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrappingArithmetic(t *testing.T) {
	tests := []struct {
		name     string
		got      Wrapping[uint8]
		expected uint8
	}{
		{"AddWraps", AsWrapping(uint8(250)).Add(AsWrapping(uint8(10))), 4},
		{"AddFits", AsWrapping(uint8(250)).Add(AsWrapping(uint8(5))), 255},
		{"SubWraps", AsWrapping(uint8(10)).Sub(AsWrapping(uint8(20))), 246},
		{"MulWraps", AsWrapping(uint8(20)).Mul(AsWrapping(uint8(20))), 144},
		{"Div", AsWrapping(uint8(100)).Div(AsWrapping(uint8(3))), 33},
		{"Rem", AsWrapping(uint8(100)).Rem(AsWrapping(uint8(3))), 1},
		{"Neg", AsWrapping(uint8(100)).Neg(), 156},
		{"Shl", AsWrapping(uint8(1)).Shl(9), 2},
		{"Shr", AsWrapping(uint8(128)).Shr(8), 128},
		{"Pow", AsWrapping(uint8(2)).Pow(8), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got.Value())
		})
	}
}

// Overflow forward past the maximum, then wrap back down below it.
func TestWrappingRoundTrip(t *testing.T) {
	num := AsWrapping(int8(120))

	wrapped := num.Add(AsWrapping(int8(10)))
	assert.Equal(t, int8(-126), wrapped.Value())

	reverse := wrapped.Sub(AsWrapping(int8(20)))
	assert.Equal(t, int8(110), reverse.Value())
}

func TestWrappingSignedEdges(t *testing.T) {
	min := AsWrapping(int8(math.MinInt8))

	assert.Equal(t, int8(math.MinInt8), min.Div(AsWrapping(int8(-1))).Value())
	assert.Equal(t, int8(0), min.Rem(AsWrapping(int8(-1))).Value())
	assert.Equal(t, int8(math.MinInt8), min.Neg().Value())
	assert.Equal(t, int8(math.MinInt8), min.Abs().Value())
	assert.Equal(t, int8(math.MinInt8), min.DivEuclid(AsWrapping(int8(-1))).Value())
	assert.Equal(t, int8(0), min.RemEuclid(AsWrapping(int8(-1))).Value())
}

func TestWrappingDivideByZeroFatal(t *testing.T) {
	require.Panics(t, func() {
		AsWrapping(uint8(1)).Div(AsWrapping(uint8(0)))
	})
	require.Panics(t, func() {
		AsWrapping(uint8(1)).Rem(AsWrapping(uint8(0)))
	})
}

func TestWrappingString(t *testing.T) {
	assert.Equal(t, "-126", AsWrapping(int8(120)).Add(AsWrapping(int8(10))).String())
}
